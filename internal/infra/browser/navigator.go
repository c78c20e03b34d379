// Package browser opens dashboard URLs with the desktop's browser launchers.
package browser

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	urlPlaceholder     = "{url}"
	defaultArrivalWait = 2 * time.Second
)

// Navigator escalates through configured launcher commands. A launch counts as arrived when
// the command exits cleanly or is still running once the arrival wait is over.
type Navigator struct {
	launchers   []*launcher
	arrivalWait time.Duration
	logger      *slog.Logger

	mu      sync.Mutex
	arrived map[string]bool
}

var _ service.Navigator = (*Navigator)(nil)

// NewNavigator builds the launcher list from cfg.Navigation, falling back to the platform opener.
func NewNavigator(cfg *config.Config, logger *slog.Logger) (*Navigator, error) {
	commands := defaultLaunchers()
	wait := defaultArrivalWait
	if nc := cfg.Navigation; nc != nil {
		if len(nc.Launchers) > 0 {
			commands = nc.Launchers
		}
		if nc.ArrivalWait > 0 {
			wait = nc.ArrivalWait
		}
	}

	nav := &Navigator{
		arrivalWait: wait,
		logger:      logger,
		arrived:     make(map[string]bool),
	}

	for _, command := range commands {
		fields := strings.Fields(command)
		if len(fields) == 0 {
			continue
		}
		nav.launchers = append(nav.launchers, &launcher{nav: nav, name: fields[0], args: fields[1:]})
	}

	if len(nav.launchers) == 0 {
		return nil, errors.New("navigation.launchers has no usable command")
	}

	return nav, nil
}

func defaultLaunchers() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open {url}"}
	case "windows":
		return []string{"rundll32 url.dll,FileProtocolHandler {url}"}
	default:
		return []string{"xdg-open {url}", "sensible-browser {url}"}
	}
}

func (n *Navigator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// Primitives returns the launchers in configuration order.
func (n *Navigator) Primitives() []service.NavigationPrimitive {
	primitives := make([]service.NavigationPrimitive, len(n.launchers))
	for i, l := range n.launchers {
		primitives[i] = l
	}

	return primitives
}

// Arrived reports the outcome of the last launch of target.
func (n *Navigator) Arrived(_ context.Context, target string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.arrived[target]
}

func (n *Navigator) record(target string, arrived bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.arrived[target] = arrived
}

// launcher runs one command line with the URL substituted.
type launcher struct {
	nav  *Navigator
	name string
	args []string
}

func (l *launcher) Name() string {
	return l.name
}

func (l *launcher) argv(target string) []string {
	args := make([]string, 0, len(l.args)+1)
	substituted := false
	for _, arg := range l.args {
		if strings.Contains(arg, urlPlaceholder) {
			arg = strings.ReplaceAll(arg, urlPlaceholder, target)
			substituted = true
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, target)
	}

	return args
}

// Go starts the command and waits at most the arrival wait for it to finish.
func (l *launcher) Go(ctx context.Context, target string) error {
	l.nav.record(target, false)

	path, err := exec.LookPath(l.name)
	if err != nil {
		return errors.Wrapf(err, "launcher %s", l.name)
	}

	// not CommandContext: a browser that stays open must outlive the call
	cmd := exec.Command(path, l.argv(target)...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", l.name)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(l.nav.arrivalWait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrapf(err, "%s exited", l.name)
		}
	case <-timer.C:
		l.nav.log(ctx).Debug("Launcher still running, treating as arrived", slog.String("launcher", l.name))
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	l.nav.record(target, true)

	return nil
}
