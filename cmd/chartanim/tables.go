package main

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/NickKoleits/gg-animate-tutorial/src/showcase"
)

// NewTablesCommand returns a cobra command wrapping showcase.TablesMain.
func NewTablesCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	main := showcase.NewTablesMain()
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "load the CSV tables and log a summary of each",
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
	subcommandFns["tables"] = NewTablesCommand
}
