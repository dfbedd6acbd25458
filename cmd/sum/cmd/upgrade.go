package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/sum/internal/update"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade sum to the latest version",
	Long:  `Upgrade sum to the latest version by downloading and installing the newest release.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", Version)

	switch update.DetectInstallMethod() {
	case update.InstallHomebrew:
		fmt.Fprintln(out, "\nsum was installed via Homebrew.")
		fmt.Fprintln(out, "Run: brew upgrade sum")
		return nil
	case update.InstallGo:
		fmt.Fprintln(out, "\nsum was installed with go install.")
		fmt.Fprintf(out, "Run: go install github.com/%s/cmd/sum@latest\n", update.Repo)
		return nil
	}

	fmt.Fprintln(out, "Checking for updates...")

	release, hasUpdate, err := update.CheckForUpdate(cmd.Context(), Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !hasUpdate {
		fmt.Fprintln(out, "Already at latest version.")
		return nil
	}

	printRelease(out, release)

	installed, err := update.Update(cmd.Context(), release)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to %s\n", installed.Version)
	return nil
}

func printRelease(out io.Writer, release *update.Release) {
	fmt.Fprintf(out, "Updating to %s...\n", release.Version)
	if release.URL != "" {
		fmt.Fprintf(out, "Release notes: %s\n", release.URL)
	}
}
