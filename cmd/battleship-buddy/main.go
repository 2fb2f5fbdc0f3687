package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/battleship/internal/config"
)

// app carries state shared by every subcommand of one command tree.
type app struct {
	configPath string
	cfg        *config.Config
}

// newRootCmd builds a fresh command tree; flags never leak between trees.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "battleship-buddy",
		Short:         "Placement-count heatmaps for a game of Battleship",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = c
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./battleship.yaml if present)")
	root.AddCommand(newServeCmd(a), newShowCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
