package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/spf13/cobra"

	"backdrop"
	"backdrop/misc"
)

var (
	flagVerbose       bool
	flagThemePath     string
	flagSeed          uint64
	flagReducedMotion bool
	flagCoarsePointer bool
	flagRoute         string
	flagSparklesMove  bool
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated portfolio page background",
	Long: `backdrop renders the procedural page background: orbiting stream nodes,
twinkling sparkles, an ambient color mesh, a cursor glow and a vignette.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := misc.SetupLoggers(flagVerbose); err != nil {
			return err
		}

		// random seed is picked here so it can be reported and reproduced
		if flagSeed == 0 {
			flagSeed = rand.Uint64()
		}
		misc.InfoLogger.Debugf("seed %d", flagSeed)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		misc.SyncLoggers()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagThemePath, "theme", "", "theme yaml file (default: built in theme)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "random seed (default: random)")
	rootCmd.PersistentFlags().BoolVar(&flagReducedMotion, "reduced-motion", false, "behave as if user prefers reduced motion")
	rootCmd.PersistentFlags().BoolVar(&flagCoarsePointer, "coarse-pointer", false, "behave as if primary pointer is coarse (touch)")
	rootCmd.PersistentFlags().StringVar(&flagRoute, "route", backdrop.LandingRoute, "page route the background is shown on")
	rootCmd.PersistentFlags().BoolVar(&flagSparklesMove, "sparkles-move", false, "keep sparkles twinkling under reduced motion")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(serveCmd)
}

// engineOptions builds engine options from persistent flags.
func engineOptions() (backdrop.Options, error) {
	opts := backdrop.Options{
		ReducedMotion:               flagReducedMotion,
		CoarsePointer:               flagCoarsePointer,
		SparklesIgnoreReducedMotion: flagSparklesMove,
		Route:                       flagRoute,
		Seed:                        flagSeed,
	}

	if flagThemePath != "" {
		theme, err := backdrop.LoadTheme(flagThemePath)
		if err != nil {
			return opts, err
		}
		opts.Theme = &theme
	}

	return opts, nil
}

// reproCommand returns command line that recreates current run.
func reproCommand(subCommand string, route string) string {
	cmd := fmt.Sprintf("backdrop %s --seed %d --route %s", subCommand, flagSeed, route)
	if flagThemePath != "" {
		cmd += " --theme " + flagThemePath
	}
	if flagReducedMotion {
		cmd += " --reduced-motion"
	}
	if flagCoarsePointer {
		cmd += " --coarse-pointer"
	}
	if flagSparklesMove {
		cmd += " --sparkles-move"
	}
	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
