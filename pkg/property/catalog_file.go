package property

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadCatalogFile reads a catalog overlay from a YAML file, or a TOML file
// when the extension is .toml. The overlay is not validated on its own since
// its wrappers may pair with built-in views.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
		return &c, nil
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	return &c, nil
}

// ResolveCatalog returns the built-in catalog merged with the overlays, in
// order, and validates the result.
func ResolveCatalog(overlays ...*Catalog) (*Catalog, error) {
	c := DefaultCatalog()
	for _, o := range overlays {
		c.Merge(o)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
