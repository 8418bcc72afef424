package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewNotFound("customer", map[string]any{"customer_id": "CUST-404"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "customer not found: not found")

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "CUST-404", domainErr.Details["customer_id"])
}

func TestToDomainError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainError(nil))

	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)

	generic := ToDomainError(errors.New("boom"))
	require.NotNil(t, generic)
	assert.Equal(t, "INTERNAL_ERROR", generic.Code)
}
