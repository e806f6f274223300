package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateOutcomeRowGoneReturnsNotFound(t *testing.T) {
	// An update racing a delete hits zero rows and must not report success.
	res := &gorm.DB{RowsAffected: 0}

	err := updateOutcome(res)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOutcomeAffectedRowSucceeds(t *testing.T) {
	res := &gorm.DB{RowsAffected: 1}

	require.NoError(t, updateOutcome(res))
}

func TestUpdateOutcomeDuplicateKey(t *testing.T) {
	res := &gorm.DB{Error: gorm.ErrDuplicatedKey}

	err := updateOutcome(res)

	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUpdateOutcomePassesThroughDriverErrors(t *testing.T) {
	driverErr := errors.New("connection reset")
	res := &gorm.DB{Error: driverErr, RowsAffected: 0}

	err := updateOutcome(res)

	require.ErrorIs(t, err, driverErr)
	require.NotErrorIs(t, err, ErrNotFound)
}
