package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gemscli/foundation/cli"
	"github.com/msto63/gemscli/foundation/cli/description"
)

var describeCmd = &cobra.Command{
	Use:   "describe <pattern>",
	Short: "Show the parameters of a pattern",
	Long: `Parses a pattern and lists its parameters.

The pattern may be given as one quoted argument or as several arguments,
which are joined with single spaces:

  gemscli describe --style unix -- 'file [--verbose] [--count#=int]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	opts, err := resolveStyle()
	if err != nil {
		return err
	}
	provider, err := resolveHelp()
	if err != nil {
		return err
	}

	parser := description.NewParser(description.Options{Logger: commandLogger(cmd, opts)})
	descs, err := parser.ParseAll(opts, provider, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(descs) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("pattern has no parameters"))
		return nil
	}

	t := newTable("Name", "Role", "Scope", "Multiplicity", "Type", "Help")
	for _, d := range descs {
		typeName := d.TypeName()
		if d.IsFlag() {
			typeName = "flag"
		}
		t.Row(d.Name, d.Role.String(), d.Scope.String(), d.Multiplicity.String(), typeName, d.Help)
	}

	fmt.Fprintln(out, titleStyle.Render("Usage: ")+cli.Usage(opts, descs))
	fmt.Fprintln(out, t.Render())
	return nil
}
