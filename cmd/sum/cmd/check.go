package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/sum/internal/styles"
	"github.com/pengelbrecht/sum/internal/verify"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify addition against reference cases",
	Long: `Verify addition against reference cases.

Runs the literal reference additions (2 + 3, -4 + -7, -3 + 10, 1.5 + 2.5,
2 + 3.5) and the commutativity, identity, integer exactness and type
coercion properties. Float results are compared with the tolerance from
the config file. Exits non-zero if any check fails.

Examples:
  sum check
  sum check --json`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runCheck,
}

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	runner := verify.NewRunner(
		verify.WithTolerance(cfg.Tolerance.Tolerance()),
		verify.WithLogger(slog.Default()),
	)

	results, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to run checks: %w", err)
	}
	passed, failed := verify.Summary(results)

	out := cmd.OutOrStdout()
	if checkJSON || cfg.Output.IsJSON() {
		payload := map[string]any{
			"results": results,
			"passed":  passed,
			"failed":  failed,
		}
		if err := json.NewEncoder(out).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	} else {
		width := 0
		for _, res := range results {
			width = max(width, len(res.Name))
		}
		for _, res := range results {
			fmt.Fprintf(out, "%s %s  %s\n",
				styles.RenderPass(res.Passed),
				styles.PadRight(res.Name, width),
				styles.MutedStyle.Render(res.Detail))
		}
		fmt.Fprintf(out, "\n%d passed, %d failed\n", passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(results), verify.ErrChecksFailed)
	}
	return nil
}
