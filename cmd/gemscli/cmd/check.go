package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gemscli/foundation/cli"
	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/validator"
)

// errInvalidArguments is returned after the failures have been printed
var errInvalidArguments = errors.New("invalid arguments")

var checkCmd = &cobra.Command{
	Use:   "check <pattern> -- <args...>",
	Short: "Check arguments against a pattern",
	Long: `Matches arguments against a pattern and validates them.

Everything after "--" is treated as the argument list, so arguments that
start with dashes reach the pattern unchanged:

  gemscli check --style unix 'file [--verbose]' -- notes.txt --verbose

The exit status is 1 when the arguments are invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := resolveStyle()
	if err != nil {
		return err
	}
	provider, err := resolveHelp()
	if err != nil {
		return err
	}

	patternArgs, raw := args[:1], args[1:]
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		patternArgs, raw = args[:dash], args[dash:]
	}

	logger := commandLogger(cmd, opts)
	parser := description.NewParser(description.Options{Logger: logger})
	descs, err := parser.ParseAll(opts, provider, strings.Join(patternArgs, " "))
	if err != nil {
		return err
	}
	v := validator.New(validator.Options{Logger: logger})
	req := cli.CreateRequest(opts, v, raw, descs)

	out := cmd.OutOrStdout()
	if !req.Valid() {
		fmt.Fprintln(out, errorStyle.Render("invalid arguments"))
		for _, failure := range req.Failures() {
			fmt.Fprintln(out, errorStyle.Render("  - "+failure.Message))
		}
		fmt.Fprintln(out, mutedStyle.Render("usage: "+cli.Usage(opts, descs)))
		return errInvalidArguments
	}

	t := newTable("Name", "Count", "Values")
	for _, d := range descs {
		matched := req.All(d.Name)
		values := make([]string, 0, len(matched))
		for _, arg := range matched {
			values = append(values, arg.Value)
		}
		t.Row(d.Name, fmt.Sprint(len(matched)), strings.Join(values, ", "))
	}

	fmt.Fprintln(out, okStyle.Render("arguments are valid"))
	fmt.Fprintln(out, t.Render())
	return nil
}
