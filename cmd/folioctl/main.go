// folioctl is the operator's companion tool: it produces allow-list
// entries and seeds a fresh database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "folioctl",
		Short:         "Operator tooling for FolioHub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newHashCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
