package build_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/000hahaha000/CSharp.lua/build"
	"github.com/000hahaha000/CSharp.lua/imports"
	"github.com/000hahaha000/CSharp.lua/luaast"
)

func TestCompilationUnit_New(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("User.cs")
	require.Len(t, cu.Statements(), 1)

	comment, ok := cu.Statements()[0].(*luaast.ShortComment)
	require.True(t, ok)
	assert.Equal(t, " Generated by CSharp.Lua Compiler 0.1.0", comment.Text)
	assert.True(t, cu.IsEmpty())
	assert.Zero(t, cu.Imports().Len())
}

func TestCompilationUnit_IsEmpty(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("User.cs")
	cu.AddTypeDeclaration()
	assert.False(t, cu.IsEmpty())
}

func TestCompilationUnit_FinalizeExample(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("Models.cs")
	cu.AddImport("System", "System", imports.LibraryImport)
	cu.AddImport("System.Linq", "Linq", imports.LibraryImport)
	cu.Imports().Register("MyApp.Models", "Models", imports.SourceUsing)
	cu.AddStatement(luaast.NewNamespaceDeclaration("MyApp"))

	require.True(t, cu.Finalize())

	buff := &bytes.Buffer{}
	n, err := cu.Render(buff)
	require.NoError(t, err)
	assert.Equal(t, buff.Len(), n)

	expected := `-- Generated by CSharp.Lua Compiler 0.1.0
local System = System
local Models
local System
local Linq
System.import(function (global)
  Models = global.MyApp.Models
  System = global.System
  Linq = global.System.Linq
end)
System.namespace("MyApp", function (namespace)
end)
`

	assert.Equal(t, expected, buff.String())
}

func TestCompilationUnit_InsertionPoint(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("File.cs")
	before := &luaast.ShortComment{Text: "before"}
	ns := luaast.NewNamespaceDeclaration("A")
	after := &luaast.ShortComment{Text: "after"}
	cu.AddStatement(before)
	cu.AddStatement(ns)
	cu.AddStatement(after)

	// header comment sits at 0 so the namespace is at index 2
	require.True(t, cu.Finalize())

	stmts := cu.Statements()
	require.Len(t, stmts, 5)
	assert.Same(t, before, stmts[1])
	_, ok := stmts[2].(*luaast.StatementList)
	assert.True(t, ok)
	assert.Same(t, ns, stmts[3])
	assert.Same(t, after, stmts[4])
}

func TestCompilationUnit_InsertsBeforeFirstNamespaceOnly(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("File.cs")
	first := luaast.NewNamespaceDeclaration("A")
	second := luaast.NewNamespaceDeclaration("B")
	cu.AddStatement(first)
	cu.AddStatement(second)

	require.True(t, cu.Finalize())

	stmts := cu.Statements()
	require.Len(t, stmts, 4)
	_, ok := stmts[1].(*luaast.StatementList)
	assert.True(t, ok)
	assert.Same(t, first, stmts[2])
	assert.Same(t, second, stmts[3])
}

func TestCompilationUnit_NoNamespaceDropsBlock(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("File.cs")
	cu.AddImport("MyApp", "MyApp", imports.SourceUsing)
	cu.AddStatement(&luaast.ShortComment{Text: "body"})

	snapshot := append([]luaast.Statement(nil), cu.Statements()...)

	assert.False(t, cu.Finalize())
	assert.Equal(t, snapshot, cu.Statements())
}

func TestCompilationUnit_ImportLinqOnce(t *testing.T) {
	t.Parallel()

	cu := build.NewCompilationUnit("File.cs")
	cu.ImportLinq()
	cu.ImportLinq()
	cu.AddStatement(luaast.NewNamespaceDeclaration("A"))
	require.True(t, cu.Finalize())

	expected := `-- Generated by CSharp.Lua Compiler 0.1.0
local System = System
local Linq = System.Linq.Enumerable
System.import(function (global)
end)
System.namespace("A", function (namespace)
end)
`

	assert.Equal(t, expected, luaast.RenderString(cu.Statements()...))
}
