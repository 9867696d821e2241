package common

const (
	CompilerName      = "CSharp.Lua"
	CompilerVersion   = "0.1.0"
	ModuleFileName    = "cslua-mod.toml"
	LuaFileExtension  = ".lua"
	UnitTOMLExtension = ".unit.toml"
	UnitYAMLExtension = ".unit.yaml"
)
