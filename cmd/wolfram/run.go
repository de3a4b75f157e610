package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tspugh/cellular-automata-ml/internal/core"
	"github.com/tspugh/cellular-automata-ml/internal/render"
	"github.com/tspugh/cellular-automata-ml/internal/runner"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		watch   bool
		tps     int
		pngPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance one automaton and print every generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			r := &runner.Runner{Out: cmd.OutOrStdout()}
			if watch {
				r.Pacer = core.NewFixedStep(tps)
			}
			start := time.Now()
			res, err := r.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "final: %s\n", res.Final())
			fmt.Fprintln(out, runner.SummaryLine(res))
			if pngPath != "" {
				if err := writePNG(pngPath, res.Rows); err != nil {
					return fmt.Errorf("write diagram: %w", err)
				}
			}
			log.Printf("run %s %s: %d generations in %s", res.RunID, res.Descriptor, res.Summary.Generations, time.Since(start).Round(time.Microsecond))
			return nil
		},
	}
	bindRunFlags(cmd, true)
	cmd.Flags().BoolVar(&watch, "watch", false, "print generations as they are computed")
	cmd.Flags().IntVar(&tps, "tps", 10, "generations per second with --watch")
	cmd.Flags().StringVar(&pngPath, "png", "", "also write the space-time diagram to this PNG file")
	return cmd
}

func writePNG(path string, rows []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, render.Mono.Diagram(rows)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
