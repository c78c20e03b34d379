package cli

import (
	"fmt"

	"painel/internal/domain/entity"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *CLI) peopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"pessoas"},
		Short:   "Manage the people registered in the municipality",
	}

	cmd.AddCommand(
		c.peopleListCommand(),
		c.peopleGetCommand(),
		c.peopleCreateCommand(),
		c.peopleUpdateCommand(),
		c.peopleDeleteCommand(),
	)

	return cmd
}

func bindListFlags(flags *pflag.FlagSet, query *entity.ListQuery) {
	flags.IntVar(&query.Page, "page", 1, "page number")
	flags.IntVar(&query.Limit, "limit", entity.DefaultPageLimit, "items per page")
	flags.StringVarP(&query.Search, "search", "s", "", "filter by text")
}

func (c *CLI) printPageFooter(page, total, pages int) {
	footer := fmt.Sprintf("%d registros", total)
	if pages > 1 {
		footer = fmt.Sprintf("página %d de %d, %d registros", page, pages, total)
	}
	c.printer.Print("%s", c.printer.Dim(footer))
}

func (c *CLI) peopleListCommand() *cobra.Command {
	var query entity.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := c.dashboard.ListPeople(cmd.Context(), query)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Items))
			for _, p := range page.Items {
				rows = append(rows, []string{p.ID.String(), p.Name, p.CPF, p.BirthDate, p.Phone})
			}
			if err := c.printer.Table([]string{"id", "nome", "cpf", "nascimento", "telefone"}, rows); err != nil {
				return err
			}
			c.printPageFooter(page.Page, page.Total, page.Pages())

			return nil
		},
	}
	bindListFlags(cmd.Flags(), &query)

	return cmd
}

func (c *CLI) peopleGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			person, err := c.dashboard.GetPerson(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printPerson(person)

			return nil
		},
	}
}

func bindPersonFlags(flags *pflag.FlagSet, input *entity.PersonInput) {
	flags.StringVar(&input.Name, "nome", "", "full name")
	flags.StringVar(&input.CPF, "cpf", "", "CPF, digits only")
	flags.StringVar(&input.BirthDate, "nascimento", "", "birth date as YYYY-MM-DD")
	flags.StringVar(&input.Phone, "telefone", "", "phone, digits only")
	flags.StringVar(&input.Email, "email", "", "e-mail")
	flags.StringVar(&input.Address, "endereco", "", "address")
}

func (c *CLI) peopleCreateCommand() *cobra.Command {
	var input entity.PersonInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validate.Validate(input); err != nil {
				return err
			}

			person, err := c.dashboard.CreatePerson(cmd.Context(), input)
			if err != nil {
				return err
			}
			c.printer.Success("Pessoa cadastrada: %s", person.ID)

			return nil
		},
	}
	bindPersonFlags(cmd.Flags(), &input)

	return cmd
}

func (c *CLI) peopleUpdateCommand() *cobra.Command {
	var changes entity.PersonInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := c.dashboard.GetPerson(ctx, id)
			if err != nil {
				return err
			}

			input := mergePerson(current, changes, cmd.Flags())
			if err := c.validate.Validate(input); err != nil {
				return err
			}

			person, err := c.dashboard.UpdatePerson(ctx, id, input)
			if err != nil {
				return err
			}
			c.printer.Success("Pessoa atualizada: %s", person.Name)

			return nil
		},
	}
	bindPersonFlags(cmd.Flags(), &changes)

	return cmd
}

// mergePerson overlays the flags the user actually passed on the stored person.
func mergePerson(current *entity.Person, changes entity.PersonInput, flags *pflag.FlagSet) entity.PersonInput {
	input := entity.PersonInput{
		Name:      current.Name,
		CPF:       current.CPF,
		BirthDate: current.BirthDate,
		Phone:     current.Phone,
		Email:     current.Email,
		Address:   current.Address,
	}

	fields := map[string]*string{
		"nome":       &input.Name,
		"cpf":        &input.CPF,
		"nascimento": &input.BirthDate,
		"telefone":   &input.Phone,
		"email":      &input.Email,
		"endereco":   &input.Address,
	}
	values := map[string]string{
		"nome":       changes.Name,
		"cpf":        changes.CPF,
		"nascimento": changes.BirthDate,
		"telefone":   changes.Phone,
		"email":      changes.Email,
		"endereco":   changes.Address,
	}
	for name, dst := range fields {
		if flags.Changed(name) {
			*dst = values[name]
		}
	}

	return input
}

func (c *CLI) peopleDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := c.dashboard.DeletePerson(cmd.Context(), id); err != nil {
				return err
			}
			c.printer.Success("Pessoa removida")

			return nil
		},
	}
}

func (c *CLI) printPerson(p *entity.Person) {
	c.printer.Field("ID", p.ID.String())
	c.printer.Field("Nome", p.Name)
	c.printer.Field("CPF", p.CPF)
	c.printer.Field("Nascimento", orDash(p.BirthDate))
	c.printer.Field("Telefone", orDash(p.Phone))
	c.printer.Field("E-mail", orDash(p.Email))
	c.printer.Field("Endereço", orDash(p.Address))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
