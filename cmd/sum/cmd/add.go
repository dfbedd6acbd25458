package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pengelbrecht/sum/internal/calculator"
	"github.com/pengelbrecht/sum/internal/styles"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Print the sum of two numbers",
	Long: `Print the sum of two numbers.

Operands may be decimal integers, 0x/0o/0b integers, or floats
(1.5, -2e3, inf). Negative operands need no quoting or "--".

Examples:
  sum add 2 3          # 5
  sum add -4 -7        # -11
  sum add 2 3.5        # 5.5
  sum add 1.5 2.5 -e   # 1.5 + 2.5 = 4.0 [float]
  sum add 2 3 --json`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: runAdd,
}

var (
	addJSON bool
	addExpr bool
)

type addOutput struct {
	A    calculator.Value `json:"a"`
	B    calculator.Value `json:"b"`
	Sum  calculator.Value `json:"sum"`
	Kind string           `json:"kind"`
}

func init() {
	addCmd.Flags().BoolVar(&addJSON, "json", false, "output as JSON")
	addCmd.Flags().BoolVarP(&addExpr, "expr", "e", false, "print the whole expression")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := calculator.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid first operand: %w", err)
	}
	b, err := calculator.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid second operand: %w", err)
	}

	sum := calculator.Sum(a, b)
	slog.Debug("add", "a", a.String(), "b", b.String(), "sum", sum.String(), "kind", sum.Kind().String())

	out := cmd.OutOrStdout()
	if addJSON || cfg.Output.IsJSON() {
		enc := json.NewEncoder(out)
		if err := enc.Encode(addOutput{A: a, B: b, Sum: sum, Kind: sum.Kind().String()}); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	if addExpr {
		fmt.Fprintln(out, styles.RenderResult(a, b, sum))
		return nil
	}
	fmt.Fprintln(out, styles.ResultStyle.Render(sum.String()))
	return nil
}

// operandArgs rewrites `add` arguments so negative numbers come after "--"
// and pflag never reads "-3" as a shorthand flag. Global flags may precede
// the subcommand. Other commands pass through.
func operandArgs(args []string) []string {
	at := subcommandIndex(args)
	if at < 0 || args[at] != addCmd.Name() {
		return args
	}

	flags := slices.Clone(args[:at+1])
	var operands []string
	rest := args[at+1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			operands = append(operands, rest[i+1:]...)
			i = len(rest)
		case !strings.HasPrefix(arg, "-") || isNumber(arg):
			operands = append(operands, arg)
		default:
			flags = append(flags, arg)
			if flagTakesValue(arg) && i+1 < len(rest) {
				i++
				flags = append(flags, rest[i])
			}
		}
	}

	if len(operands) == 0 {
		return flags
	}
	return append(append(flags, "--"), operands...)
}

// subcommandIndex returns the index of the first argument that is neither
// a flag nor a flag's value, or -1.
func subcommandIndex(args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return -1
		case !strings.HasPrefix(arg, "-"):
			return i
		case flagTakesValue(arg):
			i++
		}
	}
	return -1
}

func isNumber(s string) bool {
	_, err := calculator.Parse(s)
	return err == nil
}

func flagTakesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = addCmd.Flags().Lookup(name)
		if f == nil {
			f = rootCmd.PersistentFlags().Lookup(name)
		}
	} else if name := strings.TrimPrefix(arg, "-"); len(name) == 1 {
		f = addCmd.Flags().ShorthandLookup(name)
		if f == nil {
			f = rootCmd.PersistentFlags().ShorthandLookup(name)
		}
	}
	return f != nil && f.NoOptDefVal == ""
}
