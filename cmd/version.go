package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/mkmagnet/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for mkmagnet including the semantic
version number, git commit hash, Go version used for compilation and
target platform.

Examples:
  mkmagnet version               # Show version
  mkmagnet version --short       # Show version number only
  mkmagnet version --format json # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	switch versionFormat {
	case "json":
		return outputVersionJSON(cmd)
	case "text":
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersion())
			return nil
		}
		return outputVersionText(cmd)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}

func outputVersionText(cmd *cobra.Command) error {
	info := version.GetBuildInfo()

	fmt.Fprintf(cmd.OutOrStdout(), "mkmagnet %s", info.Version)
	if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", info.GitCommit[:7])
	}
	fmt.Fprintln(cmd.OutOrStdout())

	if !info.BuildTime.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", info.BuildTime.Format("2006-01-02 15:04:05 UTC"))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
	fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)

	if version.IsRelease() {
		fmt.Fprintln(cmd.OutOrStdout(), "Build type: release")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Build type: development")
	}

	return nil
}

func outputVersionJSON(cmd *cobra.Command) error {
	info := version.GetBuildInfo()

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	return encoder.Encode(map[string]interface{}{
		"version":    info.Version,
		"git_commit": info.GitCommit,
		"build_time": info.BuildTime,
		"go_version": info.GoVersion,
		"platform":   info.Platform,
		"is_release": version.IsRelease(),
	})
}
