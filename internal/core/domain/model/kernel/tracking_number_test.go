package kernel_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should normalize to upper case and trim", func(t *testing.T) {
		tn, err := kernel.NewTrackingNumber("  1z999aa10123456784 ")

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.Equal(t, "1Z999AA10123456784", tn.String())
	})

	t.Run("should fail when empty", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when shorter than five characters", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("AB12")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail when longer than fifty characters", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber(strings.Repeat("X", 51))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept boundary lengths", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber(strings.Repeat("A", 5))
		require.NoError(t, err)

		_, err = kernel.NewTrackingNumber(strings.Repeat("A", 50))
		require.NoError(t, err)
	})
}

func TestGenerateTrackingNumber(t *testing.T) {
	t.Run("generated numbers carry the TRK prefix", func(t *testing.T) {
		tn := kernel.GenerateTrackingNumber()

		require.NoError(t, tn.Validate())
		assert.True(t, strings.HasPrefix(tn.String(), kernel.TrackingNumberPrefix))
		assert.GreaterOrEqual(t, len(tn.String()), kernel.TrackingNumberMinLength)
		assert.LessOrEqual(t, len(tn.String()), kernel.TrackingNumberMaxLength)
	})

	t.Run("generated numbers are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			tn := kernel.GenerateTrackingNumber()
			assert.False(t, seen[tn.String()])
			seen[tn.String()] = true
		}
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("zero value tracking number fails validation", func(t *testing.T) {
		var tn kernel.TrackingNumber

		require.Error(t, tn.Validate())
	})
}
