package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"painel/config"
	"painel/internal/delivery/cli"
	"painel/internal/domain/repository"
	"painel/internal/infra/backend"
	"painel/internal/infra/browser"
	logs "painel/internal/infra/log"
	"painel/internal/infra/qrcode"
	"painel/internal/infra/storage"
	"painel/internal/usecase"
	"painel/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	os.Exit(run())
}

func run() int {
	var commandLine *cli.CLI

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectUsecase(),
		cli.Module,
		fx.Populate(&commandLine),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "painel:", err)

		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "painel:", err)

		return 1
	}

	runErr := commandLine.Serve(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Warn("Failed to stop cleanly", slog.Any("error", err))
	}

	if runErr != nil {
		return 1
	}

	return 0
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewClient,
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"log_output"`),
			),
			logs.New,
			qrcode.NewQRCodeService,
		),
		storage.Module,
		backend.Module,
		browser.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTenantService,
			impl.NewSessionBinder,
			impl.NewHeaderComposer,
			impl.NewSessionService,
			impl.NewDirectoryService,
			impl.NewDashboardService,
			impl.NewGateService,
			newSessionContext,
		),
	)
}

// newSessionContext stops listening to the store when the app stops.
func newSessionContext(
	lc fx.Lifecycle,
	store repository.StateStore,
	tenants usecase.TenantUsecase,
	session usecase.SessionUsecase,
	binder usecase.SessionBinder,
	composer usecase.HeaderComposer,
	logger *slog.Logger,
) *impl.SessionContext {
	sc := impl.NewSessionContext(store, tenants, session, binder, composer, logger)
	lc.Append(fx.StopHook(sc.Close))

	return sc
}
