package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ringgate/internal/interfaces/cli/migrate"
	"ringgate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ringgate",
		Short: "CAPTCHA challenge verification service",
		Long:  `ringgate serves ring-puzzle CAPTCHA challenges and gates storefront registration and login behind verified challenge tokens.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
