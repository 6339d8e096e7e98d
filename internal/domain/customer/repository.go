package customer

import (
	"context"
)

// CustomerRepository is the persistence boundary for customers.
//
// FindByID reports an absent customer with apperrors.ErrNotFound. Save inserts
// when the customer has no id yet and updates otherwise, returning the stored
// instance.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) (*Customer, error)

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customer *Customer) error
}
