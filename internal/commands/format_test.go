package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchID(t *testing.T) {
	ids := []string{"3f2a9c10-aaaa", "3f7b0000-bbbb", "91c0ffee-cccc"}

	id, err := matchID("91", ids)
	require.NoError(t, err)
	assert.Equal(t, "91c0ffee-cccc", id)

	id, err = matchID("3f2a9c10-aaaa", ids)
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c10-aaaa", id)

	_, err = matchID("3f", ids)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = matchID("zz", ids)
	assert.ErrorContains(t, err, "no entry")

	_, err = matchID("  ", ids)
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "3f2a9c10", shortID("3f2a9c10-aaaa"))
	assert.Equal(t, "id-1", shortID("id-1"))

	assert.Equal(t, "82.5 kg", formatAmount(82.5, "kg"))
	assert.Equal(t, "150", formatAmount(150, ""))

	assert.Equal(t, "2m", formatSeconds(120))
	assert.Equal(t, "1:30", formatSeconds(90))
	assert.Equal(t, "45s", formatSeconds(45))

	assert.Equal(t, "+2.5 kg", formatDelta(2.5))
	assert.Equal(t, "-5 kg", formatDelta(-5))
	assert.Equal(t, "same", formatDelta(0))

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
}

func TestFormatWhen(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "08:15", formatWhen(time.Date(2026, 3, 15, 8, 15, 0, 0, time.UTC), now))
	assert.Equal(t, "2 days ago", formatWhen(now.AddDate(0, 0, -2), now))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░ 50%", progressBar(50, 10))
	assert.Equal(t, "██████████ 130%", progressBar(130, 10))
	assert.Equal(t, "░░░░░░░░░░ 0%", progressBar(0, 10))
}

func TestRequireFeature(t *testing.T) {
	assert.True(t, requireFeature(true, "reports"))
	assert.False(t, requireFeature(false, "reports"))
}
