package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridianbank/navkit/pkg/navkit/coordinator"
)

// route <uri>: parse a deep link and print what dispatching it would do,
// without touching the live app.
func routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <uri>",
		Short: "Parse a deep-link URI and print the dispatch plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rr, err := kit.Parser.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println("tab:", rr.Tab)
			if rr.Sub == nil {
				fmt.Println("screen: (feature root)")
				return nil
			}
			// Show the stack a feature coordinator would rebuild.
			fc := coordinator.NewFeature(rr.Tab, kit.Builder, kit.Config.NavDepthLimit)
			fc.HandleDeepLink(rr.Sub)
			for _, r := range fc.Snapshot().Stack {
				fmt.Println("screen:", kit.Builder.Build(r).Title)
			}
			return nil
		},
	}
}
