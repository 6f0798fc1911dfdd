package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickActions(t *testing.T) {
	require.Len(t, quickActions, 4)

	for _, k := range []string{"f1", "f2", "f3", "f4"} {
		assert.NotEmpty(t, quickActions[k], "key %s must map to a canned question", k)
	}

	assert.Contains(t, quickActions["f1"], "daftar mobil")
	assert.Contains(t, quickActions["f2"], "promo")
	assert.Contains(t, quickActions["f3"], "jam operasional")
	assert.Contains(t, quickActions["f4"], "menghubungi")
}

func TestRenderMarkdown_FallsBackWithoutRenderer(t *testing.T) {
	// No renderer has been initialized in this process yet.
	assert.Equal(t, "plain **text**", renderMarkdown("plain **text**"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.2s", formatDuration(1234*time.Millisecond))
	assert.Equal(t, "0s", formatDuration(12*time.Millisecond))
}
