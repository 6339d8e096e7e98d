package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"credit-system/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

type CustomerService interface {
	Save(ctx context.Context, customer *Customer) (*Customer, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	Update(ctx context.Context, customerID int64, update CustomerUpdate) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

// NotFoundError builds the business error returned when no customer has the given id.
func NotFoundError(customerID int64) error {
	return apperrors.NewBusinessError(apperrors.ErrNotFound, "Id %d not found", customerID)
}

func (s *customerService) Save(ctx context.Context, customer *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Calling repository Save")

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	if saved != nil {
		s.logger.InfoContext(ctx, "Successfully saved customer", slog.Int64("customerID", saved.ID))
	}
	return saved, nil
}

func (s *customerService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Calling repository FindByID")

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, NotFoundError(customerID)
		}

		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	if customer == nil {
		logger.WarnContext(ctx, customerNotFound)
		return nil, NotFoundError(customerID)
	}

	logger.InfoContext(ctx, "Successfully retrieved customer")
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, update CustomerUpdate) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to update customer")

	customer, err := s.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Apply(update)
	logger.InfoContext(ctx, "Update applied in memory, calling repository Save")

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Customer disappeared before save completed")
			return nil, NotFoundError(customerID)
		}
		logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save updated customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully updated customer")
	return saved, nil
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to delete customer")

	customer, err := s.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Calling repository Delete")
	if err := s.repo.Delete(ctx, customer); err != nil {
		logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully deleted customer")
	return nil
}
