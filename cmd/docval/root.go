package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docval/internal/policy"
)

var (
	policyFile string
	colorMode  string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "docval",
	Short: "docval - partner document compliance checker",
	Long: `docval checks the documents submitted by a business partner against the
policy for their country and person type. It reports a per-document status
and an overall verdict covering missing documents, identity mismatches and
expired documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
		} else {
			_ = godotenv.Load()
		}
		return applyColorMode(colorMode)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy-file", "", "YAML policy table (default: built-in table)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")

	// Add subcommands
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func applyColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		// color decides from the terminal and NO_COLOR
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always or never", mode)
	}
	return nil
}

// loadPolicies resolves --policy-file, falling back to the configured file.
func loadPolicies(configured string) (*policy.Store, error) {
	path := policyFile
	if path == "" {
		path = configured
	}
	return policy.LoadFile(path)
}

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
