// Command abook is a multi-account address book stored in flat CSV files,
// with a soft-delete recycle bin and a print preview.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/and161185/abook/internal/config"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	logger, _ := zap.NewDevelopment(zap.WithCaller(false))
	defer func() { _ = logger.Sync() }()

	c := &cli{logger: logger}
	if err := c.rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli carries state shared by all commands. app is built by the root
// command's PersistentPreRunE, after flags are parsed.
type cli struct {
	logger  *zap.Logger
	dataDir string
	app     *app
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "abook",
		Short:         "Flat-file address book with accounts and a recycle bin",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if c.dataDir != "" {
				cfg.DataDir = c.dataDir
			}
			var err error
			c.app, err = newApp(cmd.Context(), cfg, c.logger)
			return err
		},
	}
	root.PersistentFlags().StringVar(&c.dataDir, "data", "", "data directory holding the CSV stores")

	root.AddCommand(
		c.signupCmd(), c.loginCmd(), c.logoutCmd(), c.whoamiCmd(),
		c.profileCmd(), c.accountCmd(), c.passwordResetCmd(),
		c.addCmd(), c.listCmd(), c.editCmd(), c.rmCmd(), c.printCmd(),
		c.binCmd(), c.refsCmd(),
	)
	return root
}
