package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotstore"
)

func resetListFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { listNamesOnly = false })
}

func TestListCommand_Metadata(t *testing.T) {
	if listCmd.Use != "list" {
		t.Errorf("Use = %q, want %q", listCmd.Use, "list")
	}
	if listCmd.Flags().Lookup("names") == nil {
		t.Error("--names flag should be defined")
	}
}

func TestRunList_Table(t *testing.T) {
	resetListFlags(t)

	c, buf := newTestCmd()
	require.NoError(t, runList(c, nil))

	out := buf.String()
	for _, name := range []string{"home", "config", "cache", "data"} {
		assert.Contains(t, out, name)
	}

	base, ok := dotstore.BaseDir(dotstore.Home)
	require.True(t, ok)
	assert.Contains(t, out, base)
}

func TestRunList_NamesOnly(t *testing.T) {
	resetListFlags(t)
	listNamesOnly = true

	c, buf := newTestCmd()
	require.NoError(t, runList(c, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	names := dotstore.KindNames()
	require.Len(t, lines, len(names))
	for i, name := range names {
		assert.Equal(t, name, lines[i])
	}
}
