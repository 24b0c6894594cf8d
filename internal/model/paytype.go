package model

import (
	"errors"
	"strings"
)

// PayType is the closed set of accepted payment methods. Extending it
// means adding a constant here; nothing is configurable at runtime.
type PayType string

const (
	PayCash   PayType = "cash"
	PayCard   PayType = "card"
	PayCredit PayType = "credit"
)

var ErrInvalidPayType = errors.New("invalid payment type")

// ParsePayType normalizes case and validates membership in the enum.
func ParsePayType(s string) (PayType, error) {
	switch PayType(strings.ToLower(strings.TrimSpace(s))) {
	case PayCash:
		return PayCash, nil
	case PayCard:
		return PayCard, nil
	case PayCredit:
		return PayCredit, nil
	default:
		return "", ErrInvalidPayType
	}
}
