// Package memory holds an in-process customer store used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[int64]*customer.Customer
	lastID    int64
	logger    *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(logger *slog.Logger) *CustomerRepository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &CustomerRepository{
		customers: make(map[int64]*customer.Customer),
		logger:    logger.With("component", "MemoryCustomerRepository"),
	}
}

// Save stores cust itself, so later FindByID calls return the same pointer.
func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(cust); err != nil {
		r.logger.WarnContext(ctx, "Rejected duplicate customer", slog.String("cpf", cust.CPF), slog.Any("error", err))
		return nil, err
	}

	now := time.Now().UTC()
	if cust.IsPersisted() {
		stored, ok := r.customers[cust.ID]
		if !ok {
			return nil, apperrors.ErrNotFound
		}
		cust.CreatedAt = stored.CreatedAt
	} else {
		r.lastID++
		cust.ID = r.lastID
		cust.CreatedAt = now
	}
	cust.UpdatedAt = now
	r.customers[cust.ID] = cust

	r.logger.DebugContext(ctx, "Customer stored", slog.Int64("customerID", cust.ID))
	return cust, nil
}

func (r *CustomerRepository) checkUnique(cust *customer.Customer) error {
	for id, existing := range r.customers {
		if id == cust.ID {
			continue
		}
		if existing.CPF == cust.CPF {
			return fmt.Errorf("%w: cpf already registered", apperrors.ErrAlreadyExists)
		}
		if existing.Email == cust.Email {
			return fmt.Errorf("%w: email already registered", apperrors.ErrAlreadyExists)
		}
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.customers[customerID]
	if !ok {
		r.logger.DebugContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
		return nil, apperrors.ErrNotFound
	}
	return stored, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[cust.ID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.customers, cust.ID)

	r.logger.DebugContext(ctx, "Customer removed", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}
