package security

import (
	"strings"
	"testing"

	"credit-system/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("12345")
	require.NoError(t, err)

	assert.NotEqual(t, "12345", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "hash should carry the bcrypt prefix")
	assert.True(t, hasher.Check("12345", hash))
	assert.False(t, hasher.Check("54321", hash))
	assert.False(t, hasher.Check("12345", "not-a-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = hasher.Hash(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	testCases := []struct {
		name     string
		cost     int
		expected int
	}{
		{"Below minimum", 1, bcrypt.DefaultCost},
		{"Above maximum", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{"Within range", 12, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewBcryptHasher(tc.cost).cost)
		})
	}
}
