package cli

import (
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *CLI) openCommand() *cobra.Command {
	var (
		noRefresh bool
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the dashboard in a browser, or the login page when not authenticated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			decision, err := c.gate.Evaluate(ctx, !noRefresh)
			if err != nil {
				return err
			}

			switch decision.State {
			case entity.GateAuthenticated:
				c.printer.Info("Sessão válida em %s; abrindo o painel", decision.Tenant)
			default:
				c.printer.Info("Sem sessão válida; abrindo a tela de login")
			}

			if printOnly {
				c.printer.Print("%s", decision.Target)

				return nil
			}

			result, err := c.gate.Navigate(ctx, decision)
			for _, attempt := range result.Attempts {
				if attempt.Err != nil {
					c.printer.Warning("%s: %v", attempt.Primitive, attempt.Err)
				}
			}

			if result.State == entity.GateManualFallback || errors.Is(err, domainerrors.ErrNavigationStall) {
				c.printer.Warning("Não foi possível abrir o navegador automaticamente")
				c.printer.Print("Abra manualmente: %s", c.printer.Bold(result.Target))

				return nil
			}
			if err != nil {
				return err
			}

			c.printer.Success("Aberto: %s", result.Target)

			return nil
		},
	}
	cmd.Flags().BoolVar(&noRefresh, "no-refresh", false, "trust the cached profile instead of fetching it")
	cmd.Flags().BoolVar(&printOnly, "print", false, "only print the target address")

	return cmd
}
