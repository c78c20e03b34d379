// Package cli is the command-line dashboard: tenant selection, login and the people and
// account screens of the web dashboard as cobra commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"painel/config"
	"painel/internal/delivery"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/delivery/validator"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"
	"painel/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"golang.org/x/term"
)

// Params holds dependencies for the command line, injected by Fx
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Session   *impl.SessionContext
	Directory usecase.DirectoryUsecase
	Dashboard usecase.DashboardUsecase
	Gate      usecase.GateUsecase
	QRCode    service.QRCodeService
}

// CLI runs one command line against the session context.
type CLI struct {
	cfg       *config.Config
	logger    *slog.Logger
	session   *impl.SessionContext
	directory usecase.DirectoryUsecase
	dashboard usecase.DashboardUsecase
	gate      usecase.GateUsecase
	qrcode    service.QRCodeService
	validate  *validator.Validator

	args    []string
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	reader  *bufio.Reader
	printer *Printer

	colorFlag string
}

// New builds the command line over the process arguments and standard streams.
func New(params Params) *CLI {
	return &CLI{
		cfg:       params.Config,
		logger:    params.Logger,
		session:   params.Session,
		directory: params.Directory,
		dashboard: params.Dashboard,
		gate:      params.Gate,
		qrcode:    params.QRCode,
		validate:  validator.New(),
		args:      os.Args[1:],
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		printer:   NewPrinter(os.Stdout, os.Stderr, resolveColors(ColorAuto)),
	}
}

var _ delivery.Delivery = (*CLI)(nil)

// Serve executes the command line and reports a failure on stderr.
func (c *CLI) Serve(ctx context.Context) error {
	root := c.Command()
	root.SetArgs(c.args)

	ctx = deliverycontext.WithRequestID(ctx, uuid.NewString())
	ctx = deliverycontext.WithLogger(ctx, c.logger)

	err := root.ExecuteContext(ctx)
	if err != nil {
		c.report(err)
	}

	return err
}

// Command builds the command tree.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "painel",
		Short: "Painel de gestão municipal de saúde",
		Long: `painel administers people and system accounts of a municipality.

Every call targets the selected municipality (tenant). Select one first, then log in:
  painel tenant list
  painel tenant use demo
  painel login -u admin
  painel people list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := ParseColorMode(c.colorFlag)
			if err != nil {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
			}
			c.printer = NewPrinter(c.out, c.errOut, resolveColors(mode))

			return nil
		},
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().StringVar(&c.colorFlag, "color", string(ColorAuto), "color output: auto, always or never")

	root.AddCommand(
		c.tenantCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.statusCommand(),
		c.menuCommand(),
		c.peopleCommand(),
		c.usersCommand(),
		c.openCommand(),
	)

	return root
}

// report prints err the way a user should read it.
func (c *CLI) report(err error) {
	c.logger.Debug("Command failed", slog.Any("error", err))

	c.printer.Error("%s", domainerrors.UserMessage(err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		fmt.Fprintf(c.errOut, "  Detalhes: %s\n", appErr.Details())
	}

	switch {
	case errors.Is(err, domainerrors.ErrTenantMissing):
		fmt.Fprintln(c.errOut, "  Sugestão: painel tenant use <município>")
	case errors.Is(err, domainerrors.ErrStaleSession),
		errors.Is(err, domainerrors.ErrNotAuthenticated),
		domainerrors.IsUnauthorized(err):
		fmt.Fprintln(c.errOut, "  Sugestão: painel login")
	}
}

func (c *CLI) lineReader() *bufio.Reader {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}

	return c.reader
}

func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.errOut, label)

	line, err := c.lineReader().ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

// promptSecret reads without echo when stdin is a terminal.
func (c *CLI) promptSecret(label string) (string, error) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.prompt(label)
	}

	fmt.Fprint(c.errOut, label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(c.errOut)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return string(secret), nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id inválido: " + raw))
	}

	return id, nil
}
