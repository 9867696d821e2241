package build

import (
	"fmt"
	"io"

	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/imports"
	"github.com/000hahaha000/CSharp.lua/logging"
	"github.com/000hahaha000/CSharp.lua/luaast"
)

// CompilationUnit is the output of translating a single source file.  It owns
// the statement sequence, the import registry and the import area that is
// spliced into the statements on finalization.  A unit is built by a single
// goroutine.
type CompilationUnit struct {
	// FilePath is the path to the translated source file
	FilePath string

	statements []luaast.Statement

	// importArea holds the locals bound before the registration block
	importArea *luaast.StatementList

	registry *imports.Registry

	typeDeclarationCount int
	isImportLinq         bool
}

// NewCompilationUnit creates a unit with the version header and the runtime
// root namespace already bound
func NewCompilationUnit(filePath string) *CompilationUnit {
	cu := &CompilationUnit{
		FilePath:   filePath,
		importArea: &luaast.StatementList{},
		registry:   imports.NewRegistry(),
	}

	cu.AddStatement(&luaast.ShortComment{
		Text: fmt.Sprintf(" Generated by %s Compiler %s", common.CompilerName, common.CompilerVersion),
	})
	cu.addLocal(luaast.System, luaast.System)

	return cu
}

// AddStatement appends a translated statement to the output
func (cu *CompilationUnit) AddStatement(stmt luaast.Statement) {
	cu.statements = append(cu.statements, stmt)
}

// Statements returns the unit's statement sequence
func (cu *CompilationUnit) Statements() []luaast.Statement {
	return cu.statements
}

// Imports returns the unit's import registry for the translator to write to
func (cu *CompilationUnit) Imports() *imports.Registry {
	return cu.registry
}

// AddImport registers a namespace reference; duplicates are ignored
func (cu *CompilationUnit) AddImport(prefix, alias string, origin imports.Origin) {
	cu.registry.Register(prefix, alias, origin)
}

// ImportLinq binds `Linq` to the runtime's enumerable extensions.  Only the
// first call has an effect.
func (cu *CompilationUnit) ImportLinq() {
	if !cu.isImportLinq {
		cu.addLocal(luaast.Linq, luaast.SystemLinqEnumerable)
		cu.isImportLinq = true
	}
}

func (cu *CompilationUnit) addLocal(name *luaast.IdentifierName, value luaast.Expression) {
	cu.importArea.Add(&luaast.LocalDeclaration{Name: name, Value: value})
}

// AddTypeDeclaration counts a type emitted into this unit
func (cu *CompilationUnit) AddTypeDeclaration() {
	cu.typeDeclarationCount++
}

// IsEmpty reports whether no types were emitted into this unit
func (cu *CompilationUnit) IsEmpty() bool {
	return cu.typeDeclarationCount == 0
}

// Finalize builds the registration block and inserts the import area before
// the first namespace declaration.  It must be called exactly once: a second
// call inserts a second block.  If the unit has no namespace declaration, the
// statements are left untouched, a warning is logged, and false is returned.
func (cu *CompilationUnit) Finalize() bool {
	area := imports.BuildBlock(cu.importArea, imports.Resolve(cu.registry.Entries()))

	index := cu.firstNamespaceIndex()
	if index == -1 {
		logging.LogUnitWarning(cu.FilePath, "no namespace declaration found; import block was not emitted")
		return false
	}

	cu.statements = append(cu.statements, nil)
	copy(cu.statements[index+1:], cu.statements[index:])
	cu.statements[index] = area

	return true
}

func (cu *CompilationUnit) firstNamespaceIndex() int {
	for i, stmt := range cu.statements {
		if _, ok := stmt.(*luaast.NamespaceDeclaration); ok {
			return i
		}
	}

	return -1
}

// Render writes the unit's statements as Lua source.  It returns the number of
// bytes written.
func (cu *CompilationUnit) Render(w io.Writer) (int, error) {
	r := luaast.NewRenderer(w)
	err := r.Render(cu.statements...)
	return r.BytesWritten(), err
}
