package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewAllCommand returns a cobra command wrapping showcase.AllMain.
func NewAllCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewAllMain()
	cmd := &cobra.Command{
		Use:   "all",
		Short: "run every render of the tutorial in sequence",
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
	subcommandFns["all"] = NewAllCommand
}
