package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewBubbleCommand returns a cobra command wrapping showcase.BubbleMain.
func NewBubbleCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewBubbleMain()
	cmd := &cobra.Command{
		Use:   "bubble",
		Short: "render the static income/life-expectancy bubble chart for one year",
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
	subcommandFns["bubble"] = NewBubbleCommand
}
