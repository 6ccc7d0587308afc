package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/propgen/internal/signature"
	"github.com/cmmoran/propgen/pkg/action/generate"
	"github.com/cmmoran/propgen/pkg/property"
)

func init() {
	rootCmd.AddCommand(NewCatalogCommand())
}

func NewCatalogCommand() *cobra.Command {
	var asYAML bool

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "print the effective holder type catalog",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			catalog, err := generate.Catalog(viper.GetStringSlice("catalog")...)
			if err != nil {
				return err
			}
			if asYAML {
				enc := yaml.NewEncoder(c.OutOrStdout())
				enc.SetIndent(2)
				if err = enc.Encode(catalog); err != nil {
					return err
				}
				return enc.Close()
			}
			return writeCatalog(c.OutOrStdout(), catalog)
		},
	}
	catalogCmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as a YAML overlay document")

	return catalogCmd
}

func writeCatalog(out io.Writer, catalog *property.Catalog) error {
	cl := property.NewClassifier(catalog)
	_, _ = fmt.Fprintf(out, "catalog %s\n", catalog.Version)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "HOLDER\tKIND\tVALUE TYPE\tWRITABLE")
	for _, name := range catalog.Names() {
		cls := cl.Classify(signature.Parse(name))
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", name, cls.Kind, cls.ValueType, cls.Writable)
	}
	return w.Flush()
}
