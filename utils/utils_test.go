package utils

import (
	"testing"

	"hotel-reservation/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayNormalizesToMidnight(t *testing.T) {
	a, err := ParseDay("2026-09-01")
	require.NoError(t, err)
	b, err := ParseDay("2026-09-01 18:45")
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "equal calendar dates must compare equal")
	assert.Equal(t, 0, a.Hour())
}

func TestParseDayRejectsGarbage(t *testing.T) {
	_, err := ParseDay("soon")
	require.Error(t, err)
}

func TestValidateStructReportsEachFailedField(t *testing.T) {
	msgs := ValidateStruct(types.RegisterRequest{Username: "ab", Email: "not-an-email", Password: "short"})
	require.NotNil(t, msgs)
	assert.Len(t, msgs, 3)

	msgs = ValidateStruct(types.RegisterRequest{Username: "amira", Email: "amira@example.com", Password: "long-enough"})
	assert.Nil(t, msgs)
}
