package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/imports"
	"github.com/000hahaha000/CSharp.lua/luaast"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Manifest describes what the translator produced for a single source file:
// the namespace references it discovered and the types it emitted.  Manifests
// are stored as `*.unit.toml` or `*.unit.yaml` files.
type Manifest struct {
	// Source is the path of the translated source file
	Source string `toml:"source" yaml:"source"`

	// Output is the path of the Lua file relative to the output directory.  If
	// it is empty, it is derived from Source.
	Output string `toml:"output,omitempty" yaml:"output,omitempty"`

	// Linq indicates whether the file uses the Linq extensions
	Linq bool `toml:"linq" yaml:"linq"`

	Imports    []*ManifestImport    `toml:"imports" yaml:"imports"`
	Namespaces []*ManifestNamespace `toml:"namespaces" yaml:"namespaces"`
}

// ManifestImport is a single recorded namespace reference
type ManifestImport struct {
	Prefix string `toml:"prefix" yaml:"prefix"`
	Alias  string `toml:"alias" yaml:"alias"`
	Origin string `toml:"origin" yaml:"origin"`
}

// ManifestNamespace is a namespace declaration and the types declared in it
type ManifestNamespace struct {
	Name  string   `toml:"name" yaml:"name"`
	Types []string `toml:"types" yaml:"types"`
}

// originNames maps manifest origin strings to import origins
var originNames = map[string]imports.Origin{
	"library": imports.LibraryImport,
	"using":   imports.SourceUsing,
}

// LoadManifest reads and decodes a unit manifest.  The format is chosen by the
// file extension.
func LoadManifest(path string) (*Manifest, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	switch {
	case strings.HasSuffix(path, common.UnitTOMLExtension):
		err = toml.Unmarshal(buff, m)
	case strings.HasSuffix(path, common.UnitYAMLExtension):
		err = yaml.Unmarshal(buff, m)
	default:
		return nil, fmt.Errorf("%s is not a unit manifest", path)
	}

	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	if m.Source == "" {
		return nil, fmt.Errorf("manifest %s must specify a source file", path)
	}

	return m, nil
}

// OutputPath returns the output path relative to the output directory
func (m *Manifest) OutputPath() string {
	if m.Output != "" {
		return filepath.Clean(m.Output)
	}

	return strings.TrimSuffix(filepath.Clean(m.Source), filepath.Ext(m.Source)) + common.LuaFileExtension
}

// Translate replays the manifest into a new compilation unit the same way the
// translator would have built it.  The unit is not finalized.
func (m *Manifest) Translate() (*CompilationUnit, error) {
	cu := NewCompilationUnit(m.Source)

	for _, imp := range m.Imports {
		origin, ok := originNames[imp.Origin]
		if !ok {
			return nil, fmt.Errorf("import `%s` has unknown origin `%s`", imp.Prefix, imp.Origin)
		}

		if imp.Prefix == "" {
			return nil, fmt.Errorf("import with alias `%s` is missing a prefix", imp.Alias)
		}

		alias := imp.Alias
		if alias == "" {
			alias = imp.Prefix
		}

		cu.AddImport(imp.Prefix, alias, origin)
	}

	if m.Linq {
		cu.ImportLinq()
	}

	for _, ns := range m.Namespaces {
		decl := luaast.NewNamespaceDeclaration(ns.Name)

		for _, typeName := range ns.Types {
			if !common.IsValidIdentifier(typeName) {
				return nil, fmt.Errorf("type name `%s` in namespace `%s` is not a valid identifier", typeName, ns.Name)
			}

			decl.Body.Add(classDeclaration(typeName))
			cu.AddTypeDeclaration()
		}

		cu.AddStatement(decl)
	}

	return cu, nil
}

// classDeclaration creates `namespace.class("Name", function (namespace) return {} end)`
func classDeclaration(name string) luaast.Statement {
	fn := luaast.NewFunctionExpression(luaast.Namespace)
	fn.Body.Add(&luaast.ReturnStatement{Values: []luaast.Expression{&luaast.TableInitializer{}}})

	target := &luaast.MemberAccess{Target: luaast.Namespace, Member: luaast.Class}
	return &luaast.ExpressionStatement{
		Expr: luaast.NewInvocation(target, &luaast.StringLiteral{Value: name}, fn),
	}
}
