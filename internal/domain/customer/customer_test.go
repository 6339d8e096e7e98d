package customer_test

import (
	"testing"

	"credit-system/internal/domain/customer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCustomer(t *testing.T) {
	address := customer.Address{ZipCode: "76900000", Street: "Rua Teste"}
	income := decimal.RequireFromString("1000.00")

	cust := customer.NewCustomer("Elio", "Fernandes", "123456789", "elio@test.com", "12345", income, address)

	assert.NotNil(t, cust, "NewCustomer should return a non-nil customer")
	assert.Equal(t, "Elio", cust.FirstName)
	assert.Equal(t, "Fernandes", cust.LastName)
	assert.Equal(t, "123456789", cust.CPF)
	assert.Equal(t, "elio@test.com", cust.Email)
	assert.Equal(t, "12345", cust.Password)
	assert.True(t, income.Equal(cust.Income), "Income should match input")
	assert.Equal(t, address, cust.Address, "Address is owned by value")
	assert.Equal(t, int64(0), cust.ID, "ID should be initialized to 0")
	assert.False(t, cust.IsPersisted(), "New customer should not be persisted")
}

func TestCustomer_FullName(t *testing.T) {
	testCases := []struct {
		name      string
		firstName string
		lastName  string
		expected  string
	}{
		{"Both names", "Elio", "Fernandes", "Elio Fernandes"},
		{"Only first name", "Elio", "", "Elio"},
		{"Only last name", "", "Fernandes", "Fernandes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cust := &customer.Customer{FirstName: tc.firstName, LastName: tc.lastName}
			assert.Equal(t, tc.expected, cust.FullName())
		})
	}
}

func TestCustomer_Apply(t *testing.T) {
	cust := buildCustomer(3)

	cust.Apply(customer.CustomerUpdate{
		FirstName: "Maria",
		LastName:  "Silva",
		Income:    decimal.NewFromInt(4200),
		Address:   customer.Address{ZipCode: "01001000", Street: "Praca da Se"},
	})

	assert.Equal(t, "Maria Silva", cust.FullName())
	assert.True(t, decimal.NewFromInt(4200).Equal(cust.Income))
	assert.Equal(t, "Praca da Se", cust.Address.Street)
	assert.Equal(t, "123456789", cust.CPF, "CPF is not updatable")
	assert.Equal(t, "elio@test.com", cust.Email, "Email is not updatable")
	assert.Equal(t, int64(3), cust.ID)
}
