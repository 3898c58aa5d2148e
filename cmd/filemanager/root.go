package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filemanager/internal/app"
	"github.com/GriffinCanCode/filemanager/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "filemanager [--key=value]",
	Short: "Interactive command-line file manager",
	Long: `filemanager reads commands from standard input and runs them against a
current directory that starts at your home directory. A --key=value argument
sets the name used to greet you.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runFileManager,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runFileManager(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a, err := app.New(cfg, app.Options{
		In:   cmd.InOrStdin(),
		Out:  cmd.OutOrStdout(),
		Args: args,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}
