package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayType(t *testing.T) {
	for in, want := range map[string]PayType{
		"cash":   PayCash,
		"CARD":   PayCard,
		"Credit": PayCredit,
		" cash ": PayCash,
	} {
		got, err := ParsePayType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestParsePayTypeRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "bitcoin", "cheque", "cash money"} {
		_, err := ParsePayType(in)
		assert.ErrorIs(t, err, ErrInvalidPayType, in)
	}
}
