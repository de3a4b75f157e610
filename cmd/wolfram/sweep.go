package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/tspugh/cellular-automata-ml/internal/runner"
)

func newSweepCmd(c *cli) *cobra.Command {
	var (
		from, to int
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a range of Wolfram codes and summarise each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			r := &runner.Runner{Out: cmd.OutOrStdout()}
			if progress {
				r.Progress = cmd.ErrOrStderr()
			}
			results, err := r.Sweep(cmd.Context(), cfg, from, to)
			if err != nil {
				return err
			}
			cycles := 0
			for _, res := range results {
				if res.Summary.CycleStart >= 0 {
					cycles++
				}
			}
			log.Printf("swept %d rules, %d settled into a cycle", len(results), cycles)
			return nil
		},
	}
	bindRunFlags(cmd, false)
	cmd.Flags().IntVar(&from, "from", 0, "first Wolfram code")
	cmd.Flags().IntVar(&to, "to", 255, "last Wolfram code")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}
