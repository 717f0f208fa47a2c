package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pegsolitaire/config"
)

type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func Root() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "solitaire",
		Short: "Peg solitaire on cross and triangle boards",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			zerolog.SetGlobalLevel(cfg.Level())
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Read settings from this file")
	root.PersistentFlags().StringP("shape", "s", "cross", "Board shape: cross or triangle")
	root.PersistentFlags().IntP("arm", "a", 0, "Arm thickness, 0 for the shape's default")
	root.PersistentFlags().StringP("empty", "e", "", "Starting hole as row,col")
	root.PersistentFlags().String("log-level", "info", "Log level")

	root.AddCommand(a.Play())
	root.AddCommand(a.Solve())
	root.AddCommand(a.Autoplay())
	root.AddCommand(a.Show())

	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	root := Root()
	root.SetOut(os.Stdout)
	return root.Execute()
}
