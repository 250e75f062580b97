package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/and161185/abook/internal/refdata"
)

func (c *cli) refsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "refs <states|countries>",
		Short:     "Print the reference lists used for entry input",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"states", "countries"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			switch args[0] {
			case "states":
				names = refdata.States()
			case "countries":
				names = refdata.Countries()
			default:
				return fmt.Errorf("unknown list %q (want states or countries)", args[0])
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}
