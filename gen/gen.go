// Package gen generates Go constant files for extended models.
//
// For every extended model it emits one file with exported constants
// for the model label and its property, relation and setting names, so
// host code referring to extended members does not hard-code strings.
// Generation is optional tooling and is never invoked by the extension
// pass itself.
package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/modelx"
)

// Generator writes per-model constant files using Jennifer with
// streaming writes and parallel fan-out across models.
type Generator struct {
	models  []*modelx.Model
	outDir  string
	pkg     string
	workers int
	header  string
}

// NewGenerator creates a generator for the given models writing into
// outDir. The output package name defaults to the directory base name.
func NewGenerator(models []*modelx.Model, outDir string) *Generator {
	return &Generator{
		models:  models,
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithHeader sets an additional file header comment.
func (g *Generator) WithHeader(header string) *Generator {
	g.header = header
	return g
}

// Generate writes one constants file per model.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, m := range g.models {
		m := m
		errg.Go(func() error {
			name := inflect.Underscore(m.Name()) + "_ext.go"
			return g.genModel(m).Save(filepath.Join(g.outDir, name))
		})
	}
	return errg.Wait()
}

func (g *Generator) genModel(m *modelx.Model) *jen.File {
	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by modelx. DO NOT EDIT.")
	if g.header != "" {
		f.HeaderComment(g.header)
	}
	prefix := exported(m.Name())

	f.Commentf("%sLabel is the registered name of the %s model.", prefix, m.Name())
	f.Const().Id(prefix + "Label").Op("=").Lit(m.Name())

	if names := m.PropertyNames(); len(names) > 0 {
		defs := make([]jen.Code, 0, len(names))
		for _, name := range names {
			defs = append(defs, jen.Id(prefix+"Property"+exported(name)).Op("=").Lit(name))
		}
		f.Commentf("Property names of the %s model.", m.Name())
		f.Const().Defs(defs...)
	}

	if rels := m.Relations(); len(rels) > 0 {
		defs := make([]jen.Code, 0, len(rels))
		for _, rel := range rels {
			defs = append(defs, jen.Id(prefix+"Relation"+exported(rel.Name)).Op("=").Lit(rel.Name))
		}
		f.Commentf("Relation names of the %s model.", m.Name())
		f.Const().Defs(defs...)
	}

	if settings := m.Settings(); len(settings) > 0 {
		names := make([]string, 0, len(settings))
		for name := range settings {
			names = append(names, name)
		}
		sort.Strings(names)
		defs := make([]jen.Code, 0, len(names))
		for _, name := range names {
			defs = append(defs, jen.Id(prefix+"Setting"+exported(name)).Op("=").Lit(name))
		}
		f.Commentf("Setting names of the %s model.", m.Name())
		f.Const().Defs(defs...)
	}
	return f
}

// exported turns a model, property or setting name into an exported Go
// identifier: "emailVerified" -> "EmailVerified".
func exported(name string) string {
	return inflect.Camelize(inflect.Underscore(name))
}
