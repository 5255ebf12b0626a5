package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewSimulationCommand returns a cobra command wrapping
// showcase.SimulationMain.
func NewSimulationCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewSimulationMain()
	cmd := &cobra.Command{
		Use:   "simulation",
		Short: "animate between the natural and human simulation scenarios",
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
	subcommandFns["simulation"] = NewSimulationCommand
}
