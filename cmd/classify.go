package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/propgen/internal/signature"
	"github.com/cmmoran/propgen/pkg/action/generate"
	"github.com/cmmoran/propgen/pkg/model"
	"github.com/cmmoran/propgen/pkg/property"
)

func init() {
	rootCmd.AddCommand(NewClassifyCommand())
}

func NewClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <signature>...",
		Short: "classify field type signatures",
		Long:  "Print the property kind, value type and writability of each fully qualified type signature",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			catalog, err := generate.Catalog(viper.GetStringSlice("catalog")...)
			if err != nil {
				return err
			}
			return writeClassifications(c.OutOrStdout(), property.NewClassifier(catalog), args)
		},
	}
}

func writeClassifications(out io.Writer, cl *property.Classifier, sigs []string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SIGNATURE\tKIND\tVALUE TYPE\tWRITABLE\tPROPERTY TYPE")
	for _, s := range sigs {
		cls := cl.Classify(signature.Parse(s))
		value, prop := cls.ValueType, cls.PropertyType()
		if cls.Kind == model.KindUnsupported {
			value, prop = "-", "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", s, cls.Kind, value, cls.Writable, prop)
	}
	return w.Flush()
}
