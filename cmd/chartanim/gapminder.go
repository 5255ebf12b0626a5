package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewGapminderCommand returns a cobra command wrapping
// showcase.GapminderMain.
func NewGapminderCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewGapminderMain()
	cmd := &cobra.Command{
		Use:   "gapminder",
		Short: "animate the bubble chart across all years into a GIF",
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
	subcommandFns["gapminder"] = NewGapminderCommand
}
