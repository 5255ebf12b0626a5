package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewTemperatureCommand returns a cobra command wrapping
// showcase.TemperatureMain.
func NewTemperatureCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewTemperatureMain()
	cmd := &cobra.Command{
		Use:   "temperature",
		Short: "export one anomaly-chart PNG per year and assemble them into a GIF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return main.Run()
		},
	}
	if err := commandeer.Flags(cmd.Flags(), main); err != nil {
		panic(err)
	}
	return cmd
}

func init() {
	subcommandFns["temperature"] = NewTemperatureCommand
}
