package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch_DeliversInitialAndUpdates(t *testing.T) {
	path := writeFile(t, "watched.toml", "[profiles.a]\nmax_total_len = 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, err := Watch(ctx, path)
	require.NoError(t, err)

	first := <-files
	require.Equal(t, 100, first.Profiles["a"].MaxTotalLen)

	// Give the watcher a moment to register before rewriting.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[profiles.a]\nmax_total_len = 200\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case f, ok := <-files:
			require.True(t, ok, "channel closed before update arrived")
			if f.Profiles["a"].MaxTotalLen == 200 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for profile reload")
		}
	}
}

func TestWatch_KeepsLastGoodOnParseError(t *testing.T) {
	path := writeFile(t, "watched.toml", "[profiles.a]\nmax_total_len = 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, err := Watch(ctx, path)
	require.NoError(t, err)
	<-files

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("= broken ="), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[profiles.a]\nmax_total_len = 300\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case f, ok := <-files:
			require.True(t, ok, "channel closed unexpectedly")
			// The broken intermediate write must never surface.
			require.NotNil(t, f.Profiles)
			if f.Profiles["a"].MaxTotalLen == 300 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for recovered reload")
		}
	}
}

func TestWatch_MissingFile(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "watched.toml", "[profiles.a]\nmax_total_len = 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	files, err := Watch(ctx, path)
	require.NoError(t, err)
	<-files

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-files:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
