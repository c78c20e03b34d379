package cli

import (
	"strings"

	"painel/internal/domain/entity"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *CLI) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"usuarios"},
		Short:   "Administer the system accounts of the municipality",
	}

	cmd.AddCommand(
		c.usersListCommand(),
		c.usersGetCommand(),
		c.usersCreateCommand(),
		c.usersUpdateCommand(),
		c.usersDeleteCommand(),
		c.usersResetPasswordCommand(),
		c.usersBlockCommand(true),
		c.usersBlockCommand(false),
	)

	return cmd
}

func (c *CLI) usersListCommand() *cobra.Command {
	var query entity.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := c.dashboard.ListAccounts(cmd.Context(), query)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Items))
			for _, a := range page.Items {
				rows = append(rows, []string{a.ID.String(), a.Username, a.Name, a.Role.String(), c.printer.Badge(blockedLabel(a.Blocked))})
			}
			if err := c.printer.Table([]string{"id", "usuário", "nome", "papel", "situação"}, rows); err != nil {
				return err
			}
			c.printPageFooter(page.Page, page.Total, page.Pages())

			return nil
		},
	}
	bindListFlags(cmd.Flags(), &query)

	return cmd
}

func (c *CLI) usersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			account, err := c.dashboard.GetAccount(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printAccount(account)

			return nil
		},
	}
}

// accountFlags holds the raw flag values; permissions arrive as a comma separated list.
type accountFlags struct {
	input       entity.AccountInput
	role        string
	permissions []string
}

func (f *accountFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.input.Name, "nome", "", "full name")
	flags.StringVar(&f.input.Username, "usuario", "", "login name")
	flags.StringVar(&f.input.Email, "email", "", "e-mail")
	flags.StringVar(&f.role, "papel", "", "role: ADMIN, GESTOR, OPERADOR or CONSULTA")
	flags.StringSliceVar(&f.permissions, "permissoes", nil, "permission codes; defaults to the role's")
}

func (f *accountFlags) apply(input *entity.AccountInput, flags *pflag.FlagSet) {
	if flags.Changed("nome") {
		input.Name = f.input.Name
	}
	if flags.Changed("usuario") {
		input.Username = f.input.Username
	}
	if flags.Changed("email") {
		input.Email = f.input.Email
	}
	if flags.Changed("papel") {
		input.Role = entity.Role(strings.ToUpper(f.role))
	}
	if flags.Changed("permissoes") {
		perms := make(entity.Permissions, 0, len(f.permissions))
		for _, p := range f.permissions {
			perms = append(perms, entity.Permission(strings.ToUpper(strings.TrimSpace(p))))
		}
		input.Permissions = perms
	}
}

func (c *CLI) usersCreateCommand() *cobra.Command {
	var (
		flags    accountFlags
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input entity.AccountInput
			flags.apply(&input, cmd.Flags())

			if password == "" {
				var err error
				if password, err = c.promptSecret("Senha do novo usuário: "); err != nil {
					return err
				}
			}
			input.Password = password

			if err := c.validate.Validate(input); err != nil {
				return err
			}

			account, err := c.dashboard.CreateAccount(cmd.Context(), input)
			if err != nil {
				return err
			}
			c.printer.Success("Usuário criado: %s (%s)", account.Username, account.ID)

			return nil
		},
	}
	flags.bind(cmd.Flags())
	cmd.Flags().StringVar(&password, "senha", "", "initial password (prompted when omitted)")

	return cmd
}

func (c *CLI) usersUpdateCommand() *cobra.Command {
	var flags accountFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := c.dashboard.GetAccount(ctx, id)
			if err != nil {
				return err
			}

			input := entity.AccountInput{
				Name:        current.Name,
				Username:    current.Username,
				Email:       current.Email,
				Role:        current.Role,
				Permissions: current.Permissions,
			}
			// a new role without explicit permissions takes the role's defaults
			if cmd.Flags().Changed("papel") {
				input.Permissions = nil
			}
			flags.apply(&input, cmd.Flags())

			if err := c.validate.Validate(input); err != nil {
				return err
			}

			account, err := c.dashboard.UpdateAccount(ctx, id, input)
			if err != nil {
				return err
			}
			c.printer.Success("Usuário atualizado: %s", account.Username)

			return nil
		},
	}
	flags.bind(cmd.Flags())

	return cmd
}

func (c *CLI) usersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := c.dashboard.DeleteAccount(cmd.Context(), id); err != nil {
				return err
			}
			c.printer.Success("Usuário removido")

			return nil
		},
	}
}

func (c *CLI) usersResetPasswordCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset-password <id>",
		Short: "Set a new password for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if password == "" {
				if password, err = c.promptSecret("Nova senha: "); err != nil {
					return err
				}
			}

			reset := entity.PasswordReset{Password: password}
			if err := c.validate.Validate(reset); err != nil {
				return err
			}

			if err := c.dashboard.ResetPassword(cmd.Context(), id, reset); err != nil {
				return err
			}
			c.printer.Success("Senha redefinida")

			return nil
		},
	}
	cmd.Flags().StringVar(&password, "senha", "", "new password (prompted when omitted)")

	return cmd
}

func (c *CLI) usersBlockCommand(block bool) *cobra.Command {
	use, short := "unblock <id>", "Allow a blocked account to log in again"
	if block {
		use, short = "block <id>", "Prevent an account from logging in"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			change := c.dashboard.UnblockAccount
			if block {
				change = c.dashboard.BlockAccount
			}

			account, err := change(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printer.Success("%s: %s", account.Username, c.printer.Badge(blockedLabel(account.Blocked)))

			return nil
		},
	}
}

func (c *CLI) printAccount(a *entity.Account) {
	c.printer.Field("ID", a.ID.String())
	c.printer.Field("Nome", a.Name)
	c.printer.Field("Usuário", a.Username)
	c.printer.Field("E-mail", orDash(a.Email))
	c.printer.Field("Papel", a.Role.String())
	c.printer.Field("Permissões", permissionList(a.Permissions))
	c.printer.Field("Situação", c.printer.Badge(blockedLabel(a.Blocked)))
}

func blockedLabel(blocked bool) string {
	if blocked {
		return "bloqueado"
	}

	return "ativo"
}
