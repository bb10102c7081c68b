package runtime

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRefreshesOnFileChange(t *testing.T) {
	r, aliasFile := testRuntime(t)
	// Disable per-call refresh so only the watcher can change the view.
	r.cfg.EnableHotReload = boolPtr(false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	// Give the watcher a moment to register, then rewrite the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(aliasFile, []byte("alias solo='echo solo'\n"), 0o644))

	require.Eventually(t, func() bool {
		return r.catalog.Load().Len() == 1
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchNoFilesConfiguredReturnsOnCancel(t *testing.T) {
	r, _ := testRuntime(t)
	r.cfg.AliasFiles = nil

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
