package service

import (
	"errors"
	"fmt"

	"parts_office/internal/model"
)

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrContractNotFound = errors.New("contract not found")

	// ErrInvalidDiscount covers discounts below 0 or above 100 percent.
	ErrInvalidDiscount = errors.New("invalid discount value")

	ErrPhoneTaken    = errors.New("client with this phone number already exists")
	ErrUsernameTaken = errors.New("username is already registered")
	// ErrBadCredentials deliberately does not say whether the username
	// or the password was wrong.
	ErrBadCredentials = errors.New("admin not found or wrong password")
)

// OutOfStockError carries the exhausted product so the caller can show
// which line item failed.
type OutOfStockError struct {
	Product model.Product
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.Product.ID)
}
