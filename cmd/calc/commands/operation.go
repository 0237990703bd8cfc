package commands

import (
	"github.com/spf13/cobra"

	"mvpcalc/internal/app"
	"mvpcalc/internal/domain"
	"mvpcalc/internal/view"
)

// operationCmds returns one "<op> <a> <b>" subcommand per operation.
func operationCmds(appCtx func() *app.App) []*cobra.Command {
	aliases := map[domain.Operation][]string{
		domain.Add:      {"plus", "+"},
		domain.Subtract: {"subtract", "minus"},
		domain.Multiply: {"multiply", "times", "x"},
		domain.Divide:   {"divide", "/"},
	}
	noun := map[domain.Operation]string{
		domain.Add:      "sum",
		domain.Subtract: "difference",
		domain.Multiply: "product",
		domain.Divide:   "quotient",
	}

	cmds := make([]*cobra.Command, 0, len(domain.Operations))
	for _, op := range domain.Operations {
		op := op // per-iteration copy; go directive is below 1.22
		cmds = append(cmds, &cobra.Command{
			Use:     op.String() + " <a> <b>",
			Short:   "Print the " + noun[op] + " a " + op.Symbol() + " b",
			Aliases: aliases[op],
			Example: "  calc " + op.String() + " 6 3\n  calc " + op.String() + " -- -6 3",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a := appCtx()
				v := view.NewStatic(args[0], args[1], cmd.OutOrStdout(), a.Config.Precision)
				return a.Dispatch(a.Presenter(v), op)
			},
		})
	}
	return cmds
}
