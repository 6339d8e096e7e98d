package customer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	Income    decimal.Decimal `json:"income"`
	Address   Address         `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CustomerUpdate holds the fields a customer may change after registration.
type CustomerUpdate struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	Address   Address
}

func NewCustomer(firstName, lastName, cpf, email, password string, income decimal.Decimal, address Address) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Email:     email,
		Password:  password,
		Income:    income,
		Address:   address,
	}
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// IsPersisted reports whether the customer has been assigned an id by a repository.
func (c *Customer) IsPersisted() bool {
	return c.ID != 0
}

func (c *Customer) Apply(update CustomerUpdate) {
	c.FirstName = update.FirstName
	c.LastName = update.LastName
	c.Income = update.Income
	c.Address = update.Address
}
