// Command wolfram runs elementary cellular automata in the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tspugh/cellular-automata-ml/internal/config"
	"github.com/tspugh/cellular-automata-ml/internal/telemetry"
)

// version is overridden at link time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)
	log.SetPrefix("wolfram: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "wolfram")
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("flush traces: %v", err)
		}
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// cli holds state shared by the subcommands.
type cli struct {
	configFile string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "wolfram",
		Short: "Run elementary cellular automata",
		Long: `wolfram advances one dimensional, two state, radius one cellular
automata identified by their Wolfram code and prints each generation.

Settings come from wolfram.yaml (or --config), then WOLFRAM_* environment
variables, then command flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./wolfram.yaml)")

	root.AddCommand(newRunCmd(c))
	root.AddCommand(newSweepCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wolfram "+version)
		},
	}
}
