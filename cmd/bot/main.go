package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Seteados por -ldflags en el build.
var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "warabi",
		Short:         "Bot de Discord: comandos slash, わらび y relay de IA",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context())
		},
	}
	root.AddCommand(newRunCmd(), newRegisterCmd(), newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
