package property

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Validates(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Equal(t, CatalogVersion, c.Version)
	assert.Len(t, c.Scalars, 18)
	assert.Len(t, c.Collections, 9)
	assert.Len(t, c.Generic, 3)
	assert.Len(t, c.Wrappers, 10)
	assert.Len(t, c.Writable, 20)
}

func TestDefaultCatalog_FreshCopies(t *testing.T) {
	a := DefaultCatalog()
	a.Scalars["x.Holder"] = "int"
	assert.NotContains(t, DefaultCatalog().Scalars, "x.Holder")
}

func TestCatalog_Merge(t *testing.T) {
	c := DefaultCatalog()
	c.Merge(&Catalog{
		Version:  "v1.2.0",
		Scalars:  map[string]string{"com.example.CurrencyProperty": "java.math.BigDecimal"},
		Wrappers: map[string]string{"com.example.ReadOnlyCurrencyWrapper": "com.example.CurrencyProperty"},
		Writable: []string{"com.example.CurrencyProperty", "javafx.beans.property.IntegerProperty"},
	})
	require.NoError(t, c.Validate())
	assert.Equal(t, "v1.2.0", c.Version)
	assert.Equal(t, "java.math.BigDecimal", c.Scalars["com.example.CurrencyProperty"])
	assert.Len(t, c.Writable, 21, "duplicate writable rows are not repeated")

	c.Merge(&Catalog{Version: "v1.1.0"})
	assert.Equal(t, "v1.2.0", c.Version, "lower overlay version is ignored")

	c.Merge(nil)
	assert.Equal(t, "v1.2.0", c.Version)
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       *Catalog
		wantErr bool
	}{
		{
			name: "valid",
			c: &Catalog{
				Version:  "v0.1.0",
				Scalars:  map[string]string{"a.IntHolder": "int"},
				Wrappers: map[string]string{"a.IntWrapper": "a.IntHolder"},
				Writable: []string{"a.IntHolder"},
			},
		},
		{
			name:    "bad version",
			c:       &Catalog{Version: "1.0"},
			wantErr: true,
		},
		{
			name: "dangling wrapper",
			c: &Catalog{
				Version:  "v0.1.0",
				Wrappers: map[string]string{"a.IntWrapper": "a.Missing"},
			},
			wantErr: true,
		},
		{
			name: "writable wrapper",
			c: &Catalog{
				Version:  "v0.1.0",
				Scalars:  map[string]string{"a.IntHolder": "int"},
				Wrappers: map[string]string{"a.IntWrapper": "a.IntHolder"},
				Writable: []string{"a.IntWrapper"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: v1.1.0
scalars:
  com.example.CurrencyProperty: java.math.BigDecimal
wrappers:
  com.example.ReadOnlyCurrencyWrapper: com.example.CurrencyProperty
writable:
  - com.example.CurrencyProperty
`), 0o644))

	overlay, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", overlay.Version)

	c, err := ResolveCatalog(overlay)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", c.Version)
	assert.Contains(t, c.Names(), "com.example.ReadOnlyCurrencyWrapper")
	assert.Contains(t, c.Names(), "javafx.beans.property.IntegerProperty")

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("wrappers:\n  x.W: x.Missing\n"), 0o644))
	overlay, err = LoadCatalogFile(bad)
	require.NoError(t, err)
	_, err = ResolveCatalog(overlay)
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadCatalogFile_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = "v1.2.0"
writable = ["com.example.CurrencyProperty"]

[scalars]
"com.example.CurrencyProperty" = "java.math.BigDecimal"

[wrappers]
"com.example.ReadOnlyCurrencyWrapper" = "com.example.CurrencyProperty"
`), 0o644))

	overlay, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", overlay.Version)
	assert.Equal(t, "java.math.BigDecimal", overlay.Scalars["com.example.CurrencyProperty"])
	assert.Equal(t, []string{"com.example.CurrencyProperty"}, overlay.Writable)

	c, err := ResolveCatalog(overlay)
	require.NoError(t, err)
	assert.Contains(t, c.Names(), "com.example.ReadOnlyCurrencyWrapper")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("scalars = [\n"), 0o644))
	_, err = LoadCatalogFile(bad)
	require.ErrorContains(t, err, "parse error")
}
