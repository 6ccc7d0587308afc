package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/propgen/pkg/action/generate"
)

func init() {
	var generateCmd = NewGenerateCommand()
	rootCmd.AddCommand(generateCmd)
}

func NewGenerateCommand() *cobra.Command {
	var options = generate.NewOptions()

	// generateCmd represents the propgen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate property accessors",
		Long:  "Regenerate getters, setters and property accessors for the property fields of a class document",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			options.Suffix = viper.GetString("generate.suffix")
			options.GeneratedOnly = viper.GetBool("generate.generated-only")
			options.SimpleNames = viper.GetBool("generate.simple-names")
			options.CatalogFiles = viper.GetStringSlice("catalog")

			res, err := generate.Generate(options, slog.Default())
			if err != nil {
				return err
			}
			if options.Diff && res.Diff != "" {
				_, _ = fmt.Fprintln(c.OutOrStdout(), res.Diff)
			}
			return nil
		},
	}
	flags := generateCmd.Flags()
	flags.StringVarP(&options.InFile, "input", "i", "", "class document to read")
	flags.StringVarP(&options.OutFile, "output", "o", "", "file to write the reconciled document to (default: the input)")
	flags.IntVar(&options.Index, "index", -1, "insertion index for generated accessors (default: the document's index)")
	flags.BoolVar(&options.Diff, "diff", false, "print a diff of member names")
	flags.StringP("suffix", "s", options.Suffix, "trailing word marking property holder fields")
	flags.Bool("generated-only", false, "only replace members marked as generated")
	flags.Bool("simple-names", false, "render generated sources without package qualifiers")
	_ = generateCmd.MarkFlagRequired("input")

	for _, name := range []string{"suffix", "generated-only", "simple-names"} {
		_ = viper.BindPFlag("generate."+name, flags.Lookup(name))
	}

	return generateCmd
}
