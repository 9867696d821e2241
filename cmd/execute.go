package cmd

import (
	"os"
	"path/filepath"

	"github.com/000hahaha000/CSharp.lua/build"
	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/logging"
	"github.com/000hahaha000/CSharp.lua/mods"
	"github.com/ComedicChimera/olive"
)

// Execute runs the main `cslua` application.  It returns the process exit
// status.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("cslua", "cslua emits Lua files from translated C# units", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "finalize and emit all units of a module", true)
	buildCmd.AddPrimaryArg("module-path", "the path to the module to build", true)
	buildCmd.AddFlag("check", "c", "compare outputs with the files on disk instead of writing them")

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the compiler version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 1
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		return execModCommand(subResult)
	case "version":
		logging.PrintInfoMessage(common.CompilerName+" Version", common.CompilerVersion)
	}

	return 0
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string) int {
	logging.Initialize(loglevel)

	moduleRelPath, _ := result.PrimaryArg()
	modulePath, err := filepath.Abs(moduleRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	mod, err := mods.LoadModule(modulePath)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return 1
	}

	c := build.NewCompiler(mod, result.HasFlag("check"))
	if !c.Compile() {
		return 1
	}

	return 0
}

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command
func execModCommand(result *olive.ArgParseResult) int {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modName, workDir); err != nil {
			logging.PrintErrorMessage("Module Init Error", err)
			return 1
		}

		logging.PrintInfoMessage("Module Created", filepath.Join(workDir, common.ModuleFileName))
	}

	return 0
}
