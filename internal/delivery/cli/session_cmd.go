package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *CLI) loginCommand() *cobra.Command {
	var (
		username string
		password string
		tenant   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log into the selected municipality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if tenant != "" {
				if _, err := c.directory.SelectTenant(ctx, tenant); err != nil {
					return err
				}
			}

			// fail before prompting when nothing would receive the credentials
			current, err := c.session.Tenants.CurrentTenant(ctx)
			if err != nil {
				return err
			}
			if current.IsZero() {
				return errors.WithStack(domainerrors.ErrTenantMissing)
			}

			if username == "" {
				if username, err = c.prompt("Usuário: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.promptSecret("Senha: "); err != nil {
					return err
				}
			}

			profile, err := c.session.Session.Login(ctx, entity.Credentials{Username: username, Password: password})
			if err != nil {
				return err
			}
			c.printer.Success("Bem-vindo, %s (%s) em %s", profile.Name, profile.Role, profile.Tenant)

			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "usuario", "u", "", "username")
	cmd.Flags().StringVar(&password, "senha", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&tenant, "tenant", "", "select this municipality before logging in")

	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and keep the municipality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.session.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			c.printer.Success("Sessão encerrada")

			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Fetch the profile of the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			switch c.session.Binder.Binding(ctx).Status {
			case entity.BindingStale:
				return errors.WithStack(domainerrors.ErrStaleSession)
			case entity.BindingAnonymous:
				return errors.WithStack(domainerrors.ErrNotAuthenticated)
			}

			profile, err := c.session.Session.RefreshProfile(ctx)
			if err != nil {
				return err
			}
			c.printProfile(profile)

			return nil
		},
	}
}

func (c *CLI) statusCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show municipality, session binding and token expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := c.printStatus(ctx); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			return c.watchStatus(ctx)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and report changes made by other processes")

	return cmd
}

func (c *CLI) printStatus(ctx context.Context) error {
	snap, err := c.session.Snapshot(ctx)
	if err != nil {
		return err
	}

	c.printer.Header("Sessão")

	tenant := "-"
	if !snap.Resolution.ID.IsZero() {
		tenant = fmt.Sprintf("%s (%s)", snap.Resolution.ID, snap.Resolution.Source)
		if !snap.Resolution.Selected {
			tenant += " " + c.printer.Dim("não selecionado")
		}
	}
	c.printer.Field("Município", tenant)
	c.printer.Field("Situação", c.printer.Badge(string(snap.Binding.Status)))

	if snap.Binding.Status == entity.BindingStale {
		c.printer.Field("Emitido por", snap.Binding.IssuingTenant.String())
	}
	if expiry, ok := tokenExpiry(snap.Binding.Token); ok {
		label := expiry.Local().Format(time.DateTime)
		if time.Now().After(expiry) {
			label += " " + c.printer.Badge("expirado")
		}
		c.printer.Field("Token expira", label)
	}
	if snap.Profile != nil && snap.Binding.IsAuthenticated() {
		c.printProfile(snap.Profile)
	}

	return nil
}

// watchStatus reprints the status after every store change until ctx ends.
func (c *CLI) watchStatus(ctx context.Context) error {
	events := make(chan impl.SessionEvent, 8)
	stop := c.session.OnChange(func(ev impl.SessionEvent) {
		select {
		case events <- ev:
		default:
		}
	})
	defer stop()

	c.printer.Info("Aguardando alterações (Ctrl+C para sair)")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			c.printer.Info("%s %s: %s", time.Now().Format(time.TimeOnly), ev.Kind, ev.Key)
			if err := c.printStatus(ctx); err != nil {
				return err
			}
		}
	}
}

func (c *CLI) printProfile(profile *entity.UserProfile) {
	c.printer.Field("Nome", profile.Name)
	c.printer.Field("Usuário", profile.Username)
	c.printer.Field("Papel", profile.Role.String())
	c.printer.Field("Município", profile.Tenant.String())
	c.printer.Field("Permissões", permissionList(profile.Permissions))
}

// tokenExpiry reads exp without verifying the signature; only the backend can verify it.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

func permissionList(perms entity.Permissions) string {
	if len(perms) == 0 {
		return "-"
	}

	codes := make([]string, 0, len(perms))
	for _, p := range perms {
		codes = append(codes, string(p))
	}

	return strings.Join(codes, ", ")
}

// menuEntry is one screen of the dashboard shell.
type menuEntry struct {
	label    string
	command  string
	required []entity.Permission
}

//nolint:gochecknoglobals
var menuEntries = []menuEntry{
	{label: "Pessoas", command: "painel people list", required: []entity.Permission{entity.PermPeopleRead}},
	{label: "Cadastrar pessoa", command: "painel people create", required: []entity.Permission{entity.PermPeopleWrite}},
	{label: "Usuários", command: "painel users list", required: []entity.Permission{entity.PermAccountsRead}},
	{label: "Cadastrar usuário", command: "painel users create", required: []entity.Permission{entity.PermAccountsWrite}},
	{label: "Redefinir senha", command: "painel users reset-password", required: []entity.Permission{entity.PermAccountsResetPw}},
	{label: "Bloquear usuário", command: "painel users block", required: []entity.Permission{entity.PermAccountsBlock}},
}

func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the screens the logged-in user may open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !c.session.Binder.IsAuthenticated(ctx) {
				return errors.WithStack(domainerrors.ErrNotAuthenticated)
			}

			rows := make([][]string, 0, len(menuEntries))
			for _, entry := range menuEntries {
				if c.dashboard.Allowed(ctx, entry.required...) {
					rows = append(rows, []string{entry.label, entry.command})
				}
			}
			if len(rows) == 0 {
				c.printer.Info("Nenhuma tela disponível para este perfil")

				return nil
			}

			return c.printer.Table([]string{"tela", "comando"}, rows)
		},
	}
}
