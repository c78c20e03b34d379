package cli

import (
	"os"

	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *CLI) tenantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenant",
		Aliases: []string{"municipio"},
		Short:   "Select the municipality every call targets",
	}

	cmd.AddCommand(
		c.tenantListCommand(),
		c.tenantUseCommand(),
		c.tenantShowCommand(),
		c.tenantClearCommand(),
		c.tenantRecentCommand(),
		c.tenantLinkCommand(),
	)

	return cmd
}

func (c *CLI) tenantListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the municipalities of the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tenants, err := c.directory.ListTenants(ctx)
			if err != nil {
				return err
			}
			if len(tenants) == 0 {
				c.printer.Info("Nenhum município cadastrado")

				return nil
			}

			current, _ := c.session.Tenants.CurrentTenant(ctx)

			rows := make([][]string, 0, len(tenants))
			for _, t := range tenants {
				marker := ""
				if t.Subdomain == current {
					marker = "*"
				}
				rows = append(rows, []string{marker, t.Subdomain.String(), t.Name, t.City, t.State, c.printer.Badge(activeLabel(t.Active))})
			}

			return c.printer.Table([]string{"", "subdomínio", "nome", "cidade", "uf", "situação"}, rows)
		},
	}
}

func (c *CLI) tenantUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <municipio>",
		Short: "Select a municipality after checking the directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			summary, err := c.directory.SelectTenant(ctx, args[0])
			if err != nil {
				return err
			}
			c.printer.Success("Município selecionado: %s (%s)", summary.Name, summary.Subdomain)

			if binding := c.session.Binder.Binding(ctx); binding.Status == entity.BindingStale {
				c.printer.Warning("A sessão atual pertence a %s; faça login novamente", binding.IssuingTenant)
			}

			return nil
		},
	}
}

func (c *CLI) tenantShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show how the current municipality was resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			res, err := c.session.Tenants.Resolve(ctx)
			if err != nil {
				return err
			}

			if res.ID.IsZero() {
				c.printer.Info("Nenhum município selecionado")

				return nil
			}

			c.printer.Field("Município", res.ID.String())
			c.printer.Field("Origem", string(res.Source))
			if !res.Selected {
				c.printer.Warning("%s é apenas a sugestão padrão; use painel tenant use %s", res.ID, res.ID)

				return nil
			}

			link, err := c.session.Tenants.BuildURL(ctx, "/", "")
			if err != nil {
				return err
			}
			c.printer.Field("Endereço", link)

			return nil
		},
	}
}

func (c *CLI) tenantClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the selected municipality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.session.Tenants.ClearTenant(cmd.Context()); err != nil {
				return err
			}
			c.printer.Success("Seleção de município removida")

			return nil
		},
	}
}

func (c *CLI) tenantRecentCommand() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently selected municipalities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if forget {
				if err := c.session.Tenants.ForgetRecentTenants(ctx); err != nil {
					return err
				}
				c.printer.Success("Lista de recentes apagada")

				return nil
			}

			recent, err := c.session.Tenants.RecentTenants(ctx)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				c.printer.Info("Nenhum município recente")

				return nil
			}

			rows := make([][]string, 0, len(recent))
			for _, t := range recent {
				rows = append(rows, []string{t.Subdomain.String(), t.Name, t.City, t.State})
			}

			return c.printer.Table([]string{"subdomínio", "nome", "cidade", "uf"}, rows)
		},
	}
	cmd.Flags().BoolVar(&forget, "forget", false, "clear the recent list")

	return cmd
}

func (c *CLI) tenantLinkCommand() *cobra.Command {
	var (
		tenant  string
		showQR  bool
		pngPath string
	)

	cmd := &cobra.Command{
		Use:   "link [path]",
		Short: "Print a dashboard link that carries the municipality",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			var override entity.TenantID
			if tenant != "" {
				id, ok := entity.ParseTenantID(tenant)
				if !ok {
					return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identificador de município inválido: " + tenant))
				}
				override = id
			}

			link, err := c.session.Tenants.BuildURL(ctx, path, override)
			if err != nil {
				return err
			}
			c.printer.Print("%s", link)

			if showQR {
				art, err := c.qrcode.LinkTerminal(link)
				if err != nil {
					return err
				}
				c.printer.Print("%s", art)
			}

			if pngPath != "" {
				png, err := c.qrcode.LinkPNG(link)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pngPath, png, 0o600); err != nil {
					return errors.Wrap(err, "failed to write QR code")
				}
				c.printer.Success("QR code salvo em %s", pngPath)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&tenant, "tenant", "", "municipality to link instead of the selected one")
	cmd.Flags().BoolVar(&showQR, "qr", false, "also draw the link as a QR code")
	cmd.Flags().StringVar(&pngPath, "png", "", "write the QR code as PNG to this file")

	return cmd
}

func activeLabel(active bool) string {
	if active {
		return "ativo"
	}

	return "inativo"
}
