package commands

import (
	"github.com/spf13/cobra"

	"mvpcalc/internal/app"
	"mvpcalc/internal/domain"
	"mvpcalc/internal/view"
)

// repl: read "<op> <a> <b>" lines until EOF or quit.
func replCmd(appCtx func() *app.App) *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: `Interactive mode: one "<op> <a> <b>" per line, "quit" to leave`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appCtx()
			s := view.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, a.Config.Precision)
			p := a.Presenter(s)
			return s.Run(cmd.Context(), func(op domain.Operation) error {
				return a.Dispatch(p, op)
			})
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "> ", "prompt printed before each line (empty disables)")
	return cmd
}
