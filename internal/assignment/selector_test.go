package assignment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tessera/pkg/domain-errors"
)

func TestSelect(t *testing.T) {
	pool := []string{"Amara Capital", "Baobab Trust", "Cedar Asset Mgmt"}

	t.Run("maps the hex value onto the pool by modulo", func(t *testing.T) {
		// 0xa = 10, 10 mod 3 = 1.
		selected, _, err := Select("a", pool)
		require.NoError(t, err)
		assert.Equal(t, "Baobab Trust", selected)

		// 0x0 picks the first candidate.
		selected, _, err = Select("0", pool)
		require.NoError(t, err)
		assert.Equal(t, "Amara Capital", selected)
	})

	t.Run("accepts a 0x prefix", func(t *testing.T) {
		plain, _, err := Select("deadbeef", pool)
		require.NoError(t, err)
		prefixed, _, err := Select("0xdeadbeef", pool)
		require.NoError(t, err)
		assert.Equal(t, plain, prefixed)
	})

	t.Run("handles values far beyond 64 bits", func(t *testing.T) {
		long := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
		selected, _, err := Select(long, pool)
		require.NoError(t, err)
		assert.Contains(t, pool, selected)
	})

	t.Run("is deterministic and always picks a pool member", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			hex := fmt.Sprintf("%x", i*2654435761)
			first, firstReason, err := Select(hex, pool)
			require.NoError(t, err)
			second, secondReason, err := Select(hex, pool)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, firstReason, secondReason)
			assert.Contains(t, pool, first)
		}
	})

	t.Run("reason names the selected candidate and pool size", func(t *testing.T) {
		selected, reason, err := Select("a", pool)
		require.NoError(t, err)
		assert.Contains(t, reason, selected)
		assert.Contains(t, reason, "3")
	})

	t.Run("single candidate pool always selects it", func(t *testing.T) {
		selected, _, err := Select("deadbeef", []string{"Solo AMC"})
		require.NoError(t, err)
		assert.Equal(t, "Solo AMC", selected)
	})

	t.Run("rejects an empty pool", func(t *testing.T) {
		_, _, err := Select("a", nil)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-hex input", func(t *testing.T) {
		_, _, err := Select("not-hex", pool)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

		_, _, err = Select("", pool)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
