package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/logging"
	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a module as it is encoded in TOML
type tomlModule struct {
	Name      string `toml:"name"`
	SourceDir string `toml:"source-dir" default:"."`
	OutputDir string `toml:"output-dir" default:"out"`
	Header    bool   `toml:"header" default:"true"`
	Version   string `toml:"cslua-version"`
}

// Defaults for optional module fields
const (
	DefaultSourceDir = "."
	DefaultOutputDir = "out"
)

// LoadModule loads and validates the module whose module file is in the
// directory `path`.
func LoadModule(path string) (*LuaModule, error) {
	buff, err := os.ReadFile(filepath.Join(path, common.ModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, err
	}

	if tmf.Module == nil {
		return nil, fmt.Errorf("module file at %s is missing a [module] table", path)
	}

	luaMod := &LuaModule{
		// module root is the directory enclosing the module file
		ModuleRoot: path,
	}

	if err := validateModule(luaMod, tmf.Module); err != nil {
		return nil, err
	}

	luaMod.Name = tmf.Module.Name
	luaMod.SourceDir = resolveDir(path, tmf.Module.SourceDir, DefaultSourceDir)
	luaMod.OutputDir = resolveDir(path, tmf.Module.OutputDir, DefaultOutputDir)
	luaMod.Header = tmf.Module.Header

	return luaMod, nil
}

// validateModule checks that the top level module contents are valid
func validateModule(lmod *LuaModule, mod *tomlModule) error {
	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", lmod.ModuleRoot)
	}

	if !common.IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if mod.Version != common.CompilerVersion {
		logging.LogBuildWarning(
			"Module",
			fmt.Sprintf("version of module `%s` (v%s) does not match current compiler version (v%s)", mod.Name, mod.Version, common.CompilerVersion),
		)
	}

	return nil
}

// resolveDir makes a module-relative directory absolute
func resolveDir(root, dir, def string) string {
	if dir == "" {
		dir = def
	}

	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}

	return filepath.Join(root, dir)
}
