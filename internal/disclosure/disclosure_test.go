package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDisclosureTransitions(t *testing.T) {
	d := New("detail", nil)
	require.Equal(t, StateClosed, d.State())

	assert.False(t, d.Close(), "closing a closed disclosure is a no-op")
	assert.False(t, d.IsOpen())

	assert.True(t, d.Open())
	assert.True(t, d.IsOpen())

	assert.False(t, d.Open(), "opening twice is a no-op")
	assert.True(t, d.IsOpen())

	assert.True(t, d.Close())
	assert.False(t, d.IsOpen())
}

func TestDisclosureToggle(t *testing.T) {
	d := New("filter", nil)
	d.Toggle()
	assert.True(t, d.IsOpen())
	d.Toggle()
	assert.False(t, d.IsOpen())
}

func TestDisclosuresAreIndependent(t *testing.T) {
	detail := New("detail", nil)
	panel := New("filter", nil)

	detail.Open()
	assert.True(t, detail.IsOpen())
	assert.False(t, panel.IsOpen())

	panel.Open()
	detail.Close()
	assert.False(t, detail.IsOpen())
	assert.True(t, panel.IsOpen())
}

func TestDisclosureLogsTransitions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	d := New("detail", zap.New(core))

	d.Open()
	d.Open()
	d.Close()

	entries := logs.FilterMessage("disclosure transition").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "open", entries[0].ContextMap()["to"])
	assert.Equal(t, "closed", entries[1].ContextMap()["to"])
}
