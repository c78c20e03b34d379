package browser

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"painel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNavigator(t *testing.T, launchers ...string) *Navigator {
	t.Helper()

	cfg := &config.Config{Navigation: &config.NavigationConfig{
		Launchers:   launchers,
		ArrivalWait: 200 * time.Millisecond,
	}}
	nav, err := NewNavigator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return nav
}

func requireCommands(t *testing.T, names ...string) {
	t.Helper()

	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available", name)
		}
	}
}

func TestNewNavigator(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	nav, err := NewNavigator(&config.Config{}, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, nav.Primitives())
	assert.Equal(t, defaultArrivalWait, nav.arrivalWait)

	_, err = NewNavigator(&config.Config{Navigation: &config.NavigationConfig{Launchers: []string{"  "}}}, logger)
	require.Error(t, err)
}

func TestLauncher_Argv(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected []string
	}{
		{name: "placeholder", command: "firefox --new-window {url}", expected: []string{"--new-window", "http://x/"}},
		{name: "appended", command: "xdg-open", expected: []string{"http://x/"}},
		{name: "embedded", command: "chromium --app={url}", expected: []string{"--app=http://x/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := newNavigator(t, tt.command)
			assert.Equal(t, tt.expected, nav.launchers[0].argv("http://x/"))
		})
	}
}

func TestNavigator_Launch(t *testing.T) {
	requireCommands(t, "true", "false", "sh")
	ctx := context.Background()

	t.Run("clean exit arrives", func(t *testing.T) {
		nav := newNavigator(t, "true {url}")

		require.NoError(t, nav.Primitives()[0].Go(ctx, "http://x/"))
		assert.True(t, nav.Arrived(ctx, "http://x/"))
		assert.False(t, nav.Arrived(ctx, "http://y/"))
	})

	t.Run("failing exit does not arrive", func(t *testing.T) {
		nav := newNavigator(t, "false {url}")

		require.Error(t, nav.Primitives()[0].Go(ctx, "http://x/"))
		assert.False(t, nav.Arrived(ctx, "http://x/"))
	})

	t.Run("still running arrives", func(t *testing.T) {
		// the target doubles as the shell script so the launcher outlives the wait briefly
		nav := newNavigator(t, "sh -c {url}")

		require.NoError(t, nav.Primitives()[0].Go(ctx, "sleep 1"))
		assert.True(t, nav.Arrived(ctx, "sleep 1"))
	})

	t.Run("missing command", func(t *testing.T) {
		nav := newNavigator(t, "painel-no-such-browser {url}")

		require.Error(t, nav.Primitives()[0].Go(ctx, "http://x/"))
		assert.False(t, nav.Arrived(ctx, "http://x/"))
	})
}
