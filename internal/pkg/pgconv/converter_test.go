//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"wedding-analytics/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	testCases := []struct {
		name          string
		input         pgtype.Numeric
		expected      decimal.Decimal
		expectedError bool
	}{
		{
			name:     "success: scaled value",
			input:    pgtype.Numeric{Int: big.NewInt(1234567), Exp: -2, Valid: true},
			expected: decimal.RequireFromString("12345.67"),
		},
		{
			name:     "success: NULL maps to zero",
			input:    pgtype.Numeric{Valid: false},
			expected: decimal.Zero,
		},
		{
			name:     "success: positive exponent",
			input:    pgtype.Numeric{Int: big.NewInt(1), Exp: 5, Valid: true},
			expected: decimal.NewFromInt(100000),
		},
		{
			name:          "error: NaN",
			input:         pgtype.Numeric{NaN: true, Valid: true},
			expectedError: true,
		},
		{
			name:          "error: infinity",
			input:         pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := pgconv.DecimalFromNumeric(tc.input)
			if tc.expectedError {
				require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
		})
	}
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgtype.UUID{Bytes: id, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Equal(t, "Tokyo", pgconv.StringFromPgtype(pgtype.Text{String: "Tokyo", Valid: true}))

	assert.Nil(t, pgconv.Int32PtrFromInt2(pgtype.Int2{}))
	rating := pgconv.Int32PtrFromInt2(pgtype.Int2{Int16: 4, Valid: true})
	require.NotNil(t, rating)
	assert.Equal(t, int32(4), *rating)

	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
	now := time.Now()
	assert.Equal(t, now, pgconv.TimePtrToPgtype(&now).Time)
}
