package history_test

import (
	"testing"

	"github.com/agentlint/agentlint/internal/adapters/outbound/history"
	"github.com/agentlint/agentlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestFileHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.ReportEntry{Timestamp: "2026-08-28T10:00:00Z", Score: 66.7, IsValid: false}
	second := domain.ReportEntry{Timestamp: "2026-08-28T11:00:00Z", CommitHash: "abc123", Score: 100, IsValid: true}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}
