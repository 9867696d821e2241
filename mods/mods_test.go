package mods_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/mods"
)

func TestInitModule_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, mods.InitModule("app", dir))

	mod, err := mods.LoadModule(dir)
	require.NoError(t, err)

	assert.Equal(t, "app", mod.Name)
	assert.Equal(t, dir, mod.ModuleRoot)
	assert.Equal(t, dir, mod.SourceDir)
	assert.Equal(t, filepath.Join(dir, "out"), mod.OutputDir)
	assert.True(t, mod.Header)
}

func TestInitModule_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.EqualError(t, mods.InitModule("1app", dir), "module name must be a valid identifier")

	require.NoError(t, mods.InitModule("app", dir))
	assert.EqualError(t, mods.InitModule("app", dir), "module file already exists")
}

func TestLoadModule_Options(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "lua")
	content := "[module]\nname = \"game\"\nsource-dir = \"units\"\noutput-dir = \"" + filepath.ToSlash(abs) + "\"\nheader = false\ncslua-version = \"" + common.CompilerVersion + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(content), 0o644))

	mod, err := mods.LoadModule(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "units"), mod.SourceDir)
	assert.Equal(t, filepath.Clean(abs), mod.OutputDir)
	assert.False(t, mod.Header)
}

func TestLoadModule_Errors(t *testing.T) {
	t.Parallel()

	_, err := mods.LoadModule(t.TempDir())
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte("[module]\ncslua-version = \"0.1.0\"\n"), 0o644))
	_, err = mods.LoadModule(dir)
	assert.ErrorContains(t, err, "missing module name")

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte("title = \"x\"\n"), 0o644))
	_, err = mods.LoadModule(dir)
	assert.ErrorContains(t, err, "missing a [module] table")
}
