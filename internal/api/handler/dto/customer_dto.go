package dto

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// maxPasswordBytes is bcrypt's input limit, counted in bytes rather than runes.
const maxPasswordBytes = 72

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreateCustomerRequest struct {
	FirstName string          `json:"firstName" validate:"required,max=255"`
	LastName  string          `json:"lastName" validate:"required,max=255"`
	CPF       string          `json:"cpf" validate:"required,numeric,max=32"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email" validate:"required,email,max=255"`
	Password  string          `json:"password" validate:"required,min=4,max=72"`
	ZipCode   string          `json:"zipCode" validate:"required,max=16"`
	Street    string          `json:"street" validate:"required,max=255"`
}

func (r *CreateCustomerRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if len(r.Password) > maxPasswordBytes {
		return apperrors.NewValidationError("password", "must be at most 72 bytes long")
	}
	return validateIncome(r.Income)
}

// ToEntity builds the domain customer. The password must already be hashed.
func (r *CreateCustomerRequest) ToEntity(passwordHash string) *customer.Customer {
	return customer.NewCustomer(
		strings.TrimSpace(r.FirstName),
		strings.TrimSpace(r.LastName),
		r.CPF,
		strings.ToLower(strings.TrimSpace(r.Email)),
		passwordHash,
		r.Income,
		customer.Address{ZipCode: r.ZipCode, Street: strings.TrimSpace(r.Street)},
	)
}

type UpdateCustomerRequest struct {
	FirstName string          `json:"firstName" validate:"required,max=255"`
	LastName  string          `json:"lastName" validate:"required,max=255"`
	Income    decimal.Decimal `json:"income"`
	ZipCode   string          `json:"zipCode" validate:"required,max=16"`
	Street    string          `json:"street" validate:"required,max=255"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateIncome(r.Income)
}

func (r *UpdateCustomerRequest) ToUpdate() customer.CustomerUpdate {
	return customer.CustomerUpdate{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Income:    r.Income,
		Address:   customer.Address{ZipCode: r.ZipCode, Street: strings.TrimSpace(r.Street)},
	}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "numeric":
		return "must contain digits only"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func validateIncome(income decimal.Decimal) error {
	if income.IsNegative() {
		return apperrors.NewValidationError("income", "must not be negative")
	}
	return nil
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Income    string    `json:"income"`
	ZipCode   string    `json:"zipCode"`
	Street    string    `json:"street"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		ID:        strconv.FormatInt(cust.ID, 10),
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Email:     cust.Email,
		Income:    cust.Income.StringFixed(2),
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
		CreatedAt: cust.CreatedAt,
		UpdatedAt: cust.UpdatedAt,
	}
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
