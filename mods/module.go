package mods

// LuaModule represents a module -- specifically, the module configuration
// loaded from its module file.
type LuaModule struct {
	// Name is the name of the module
	Name string

	// ModuleRoot is the path to the root directory of the current module
	ModuleRoot string

	// SourceDir is the absolute path to the directory searched for unit
	// manifests
	SourceDir string

	// OutputDir is the absolute path to the directory Lua files are written to
	OutputDir string

	// Header indicates whether the generated version comment is kept at the
	// top of each output file
	Header bool
}
