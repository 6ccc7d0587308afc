package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/propgen/pkg/action/generate"
	"github.com/cmmoran/propgen/pkg/classdoc"
)

func TestGenerate_Golden(ttt *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	require.NoError(ttt, err)
	require.NotEmpty(ttt, archives)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, path := range archives {
		ttt.Run(filepath.Base(path), func(tt *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(tt, err)

			dir := tt.TempDir()
			files := make(map[string]string, len(ar.Files))
			for _, f := range ar.Files {
				p := filepath.Join(dir, f.Name)
				require.NoError(tt, os.WriteFile(p, f.Data, 0o644))
				files[f.Name] = p
			}
			require.Contains(tt, files, "in.yaml")
			require.Contains(tt, files, "want.yaml")

			opts := generate.NewOptions()
			if p, ok := files["options.yaml"]; ok {
				data, err := os.ReadFile(p)
				require.NoError(tt, err)
				require.NoError(tt, yaml.Unmarshal(data, opts))
			}
			if p, ok := files["catalog.yaml"]; ok {
				opts.CatalogFiles = append(opts.CatalogFiles, p)
			}
			opts.InFile = files["in.yaml"]
			opts.OutFile = filepath.Join(dir, "out.yaml")
			opts.Diff = true

			res, err := generate.Generate(opts, logger)
			require.NoError(tt, err)
			assert.NotEmpty(tt, res.Diff)

			want, err := classdoc.Load(files["want.yaml"])
			require.NoError(tt, err)
			got, err := classdoc.Load(opts.OutFile)
			require.NoError(tt, err)
			if diff := cmp.Diff(want, got); diff != "" {
				tt.Errorf("generate %s mismatch (-want +got):\n%s", filepath.Base(path), diff)
			}

			// a second run over the output must not change it
			opts.InFile = opts.OutFile
			again, err := generate.Generate(opts, logger)
			require.NoError(tt, err)
			assert.Empty(tt, again.Diff)
			assert.Equal(tt, res.Index, again.Index)

			regenerated, err := classdoc.Load(opts.OutFile)
			require.NoError(tt, err)
			if diff := cmp.Diff(want, regenerated); diff != "" {
				tt.Errorf("regenerate %s mismatch (-want +got):\n%s", filepath.Base(path), diff)
			}
		})
	}
}
