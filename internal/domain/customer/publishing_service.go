package customer

import (
	"context"
	"log/slog"
	"time"

	"credit-system/internal/event"
)

// publishingService announces successful writes of the wrapped service. A failed
// publish is logged and never fails the call.
type publishingService struct {
	next   CustomerService
	pub    event.Publisher
	logger *slog.Logger
}

var _ CustomerService = (*publishingService)(nil)

func NewPublishingService(next CustomerService, pub event.Publisher, logger *slog.Logger) CustomerService {
	if next == nil {
		panic("customer service cannot be nil")
	}
	if pub == nil {
		panic("event publisher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &publishingService{
		next:   next,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerPublishingService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID: cust.ID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		CPF:        cust.CPF,
		Email:      cust.Email,
		Income:     cust.Income,
		ZipCode:    cust.Address.ZipCode,
		Street:     cust.Address.Street,
	}
}

func (s *publishingService) Save(ctx context.Context, customer *Customer) (*Customer, error) {
	saved, err := s.next.Save(ctx, customer)
	if err != nil || saved == nil {
		return saved, err
	}

	created := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(saved),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, created); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer saved, but FAILED to publish creation event",
			slog.Int64("customerID", saved.ID), slog.Any("error", pubErr))
	}
	return saved, nil
}

func (s *publishingService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	return s.next.FindByID(ctx, customerID)
}

func (s *publishingService) Update(ctx context.Context, customerID int64, update CustomerUpdate) (*Customer, error) {
	updated, err := s.next.Update(ctx, customerID, update)
	if err != nil {
		return nil, err
	}

	changed := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(updated),
	}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, changed); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer updated, but FAILED to publish update event",
			slog.Int64("customerID", customerID), slog.Any("error", pubErr))
	}
	return updated, nil
}

func (s *publishingService) Delete(ctx context.Context, customerID int64) error {
	if err := s.next.Delete(ctx, customerID); err != nil {
		return err
	}

	deleted := event.CustomerDeletedEvent{
		Timestamp:  time.Now(),
		CustomerID: customerID,
	}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deleted); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event",
			slog.Int64("customerID", customerID), slog.Any("error", pubErr))
	}
	return nil
}
