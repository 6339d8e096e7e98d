package memory

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func elio() *customer.Customer {
	return customer.NewCustomer("Elio", "Fernandes", "123456789", "elio@test.com", "12345",
		decimal.NewFromFloat(1000.0), customer.Address{ZipCode: "76900000", Street: "Rua Teste"})
}

type countingRepository struct {
	*CustomerRepository
	deletes int
}

func (c *countingRepository) Delete(ctx context.Context, cust *customer.Customer) error {
	c.deletes++
	return c.CustomerRepository.Delete(ctx, cust)
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)

	first := elio()
	saved, err := repo.Save(ctx, first)
	require.NoError(t, err)
	assert.Same(t, first, saved)
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	second := customer.NewCustomer("Ana", "Lima", "987654321", "ana@test.com", "secret",
		decimal.NewFromInt(2500), customer.Address{ZipCode: "01001000", Street: "Praca da Se"})
	_, err = repo.Save(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, repo.Len())
}

func TestSaveRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)
	_, err := repo.Save(ctx, elio())
	require.NoError(t, err)

	t.Run("same cpf", func(t *testing.T) {
		dup := elio()
		dup.Email = "other@test.com"
		_, err := repo.Save(ctx, dup)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("same email", func(t *testing.T) {
		dup := elio()
		dup.CPF = "000000000"
		_, err := repo.Save(ctx, dup)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	assert.Equal(t, 1, repo.Len())
}

func TestSaveExistingUpdatesStoredCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)
	cust := elio()
	_, err := repo.Save(ctx, cust)
	require.NoError(t, err)
	createdAt := cust.CreatedAt

	cust.Address.Street = "Avenida Brasil"
	_, err = repo.Save(ctx, cust)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, cust.ID)
	require.NoError(t, err)
	assert.Equal(t, "Avenida Brasil", found.Address.Street)
	assert.Equal(t, createdAt, found.CreatedAt)
	assert.Same(t, cust, found)
}

func TestFindByIDReturnsStoredPointer(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)
	saved, err := repo.Save(ctx, elio())
	require.NoError(t, err)

	first, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Same(t, saved, first)
	assert.Same(t, first, second)
}

func TestSaveUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewCustomerRepository(testLogger)
	ghost := elio()
	ghost.ID = 77

	_, err := repo.Save(context.Background(), ghost)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindByIDMissing(t *testing.T) {
	repo := NewCustomerRepository(testLogger)

	found, err := repo.FindByID(context.Background(), 42)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)
	cust := elio()
	_, err := repo.Save(ctx, cust)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, cust))
	assert.Equal(t, 0, repo.Len())
	assert.ErrorIs(t, repo.Delete(ctx, cust), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, nil), apperrors.ErrInvalidArgument)
}

func TestConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(testLogger)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cust := elio()
			cust.CPF = strconv.Itoa(n)
			cust.Email = cust.CPF + "@test.com"
			_, err := repo.Save(ctx, cust)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}

func TestCustomerServiceScenarios(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepository{CustomerRepository: NewCustomerRepository(testLogger)}
	service := customer.NewCustomerService(repo, testLogger)

	saved, err := service.Save(ctx, elio())
	require.NoError(t, err)
	require.Equal(t, int64(1), saved.ID)

	t.Run("find registered customer", func(t *testing.T) {
		found, err := service.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Same(t, saved, found)
		assert.Equal(t, "Elio Fernandes", found.FullName())
		assert.Equal(t, "elio@test.com", found.Email)
	})

	t.Run("find unknown id", func(t *testing.T) {
		_, err := service.FindByID(ctx, 42)
		assert.EqualError(t, err, "Id 42 not found")
		assert.True(t, apperrors.IsBusinessError(err))
	})

	t.Run("delete unknown id issues no delete", func(t *testing.T) {
		err := service.Delete(ctx, 42)
		assert.EqualError(t, err, "Id 42 not found")
		assert.Equal(t, 0, repo.deletes)
	})

	t.Run("delete registered customer", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, 1))
		assert.Equal(t, 1, repo.deletes)

		_, err := service.FindByID(ctx, 1)
		assert.EqualError(t, err, "Id 1 not found")
	})
}
