// alsandbox runs the sample gameplay scripts against the in-process host.
//
// Usage:
//
//	alsandbox run        - Run the sandbox scene headless and print a report
//	alsandbox entities   - List the entities of the scene
//	alsandbox window     - Open the scene in a window with the debug overlay
//
// Global flags:
//
//	--config <path>      - Runtime config (default: search ~/.alscript, ./configs)
//	--log-level <level>  - Override the configured log level
//	--profile <mode>     - cpu, mem or off
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagProfile  string

	profiler interface{ Stop() }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alsandbox",
	Short: "Run gameplay scripts against an in-process engine host",
	Long: `alsandbox loads a scene, binds its scripts and drives them frame by
frame, either headless with scripted input or in a window.

Examples:
  alsandbox run --frames 120 --key W@1-60 --key F@80
  alsandbox entities
  alsandbox window --config configs/runtime.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch flagProfile {
		case "", "off":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		case "mem":
			profiler = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		default:
			return fmt.Errorf("unknown profile mode %q (want cpu, mem or off)", flagProfile)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runtime config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "off", "Profiling mode: cpu, mem or off")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(entitiesCmd)
	rootCmd.AddCommand(windowCmd)
}
