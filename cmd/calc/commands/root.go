package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mvpcalc/internal/app"
)

// Execute runs the calc CLI against the process stdio.
func Execute() error {
	return NewRoot(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRoot builds the root command. Output of results and errors goes to out;
// logs and cobra's own messages go to errOut.
func NewRoot(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		precision int
		verbose   bool
		appCtx    *app.App
	)

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Two-operand calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = precision
			}
			level, _ := cfg.Level()
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			appCtx = app.New(cfg, log)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().IntVar(&precision, "precision", -1, "significant digits in results (-1 = shortest; overrides CALC_PRECISION)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	current := func() *app.App { return appCtx }
	root.AddCommand(operationCmds(current)...)
	root.AddCommand(replCmd(current))
	return root
}
