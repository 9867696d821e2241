package build

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/000hahaha000/CSharp.lua/common"
	"github.com/000hahaha000/CSharp.lua/logging"
	"github.com/000hahaha000/CSharp.lua/luaast"
	"github.com/000hahaha000/CSharp.lua/mods"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a build: it turns every unit manifest of a module into a Lua file
type Compiler struct {
	// mod is the module being built
	mod *mods.LuaModule

	// checkOnly indicates that outputs are compared against the files on disk
	// rather than written
	checkOnly bool

	// outputs is the list of finalized, rendered units sorted by output path
	outputs []*unitOutput

	// skipped counts units that declared no types and were not emitted
	skipped int

	errorCount int

	// m guards outputs, skipped and errorCount while units are built
	m sync.Mutex
}

// unitOutput is the rendered result of a single unit
type unitOutput struct {
	manifestPath string
	outputPath   string
	source       []byte
}

// NewCompiler creates a new compiler for a given module
func NewCompiler(mod *mods.LuaModule, checkOnly bool) *Compiler {
	return &Compiler{mod: mod, checkOnly: checkOnly}
}

// Compile builds every unit in the module and writes (or checks) the outputs.
// It handles all errors appropriately and returns whether the build succeeded.
func (c *Compiler) Compile() bool {
	logging.LogCompileHeader(c.mod.Name, c.checkOnly)

	logging.LogBeginPhase("Loading")
	manifestPaths, err := c.collectManifests()
	if err != nil {
		c.reportConfigError("Source", fmt.Sprintf("error walking %s: %s", c.mod.SourceDir, err))
	}
	logging.LogEndPhase()

	if err != nil {
		logging.LogCompilationFinished(0, 0)
		return false
	}

	// units share no state so each one is built concurrently
	logging.LogBeginPhase("Finalizing")
	wg := &sync.WaitGroup{}
	for _, path := range manifestPaths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			c.buildUnit(path)
		}(path)
	}
	wg.Wait()
	logging.LogEndPhase()

	sort.Slice(c.outputs, func(i, j int) bool {
		return c.outputs[i].outputPath < c.outputs[j].outputPath
	})

	var bytesWritten uint64
	if c.errorCount == 0 {
		if c.checkOnly {
			logging.LogBeginPhase("Checking")
			c.checkOutputs()
		} else {
			logging.LogBeginPhase("Writing")
			bytesWritten = c.writeOutputs()
		}
		logging.LogEndPhase()
	}

	if c.skipped > 0 {
		logging.LogBuildWarning("Build", fmt.Sprintf("%d unit(s) declared no types and were not emitted", c.skipped))
	}

	emitted := len(c.outputs)
	if c.checkOnly {
		emitted = 0
	}

	logging.LogCompilationFinished(emitted, bytesWritten)
	return c.errorCount == 0
}

// collectManifests finds all unit manifests beneath the source directory.  The
// output directory is never searched.
func (c *Compiler) collectManifests() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(c.mod.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == c.mod.OutputDir {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ok := common.TrimUnitExtension(path); ok {
			paths = append(paths, path)
		}

		return nil
	})

	return paths, err
}

// buildUnit loads, translates, finalizes and renders a single manifest
func (c *Compiler) buildUnit(manifestPath string) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		c.reportUnitError(manifestPath, err.Error())
		return
	}

	cu, err := m.Translate()
	if err != nil {
		c.reportUnitError(manifestPath, err.Error())
		return
	}

	if cu.IsEmpty() {
		c.m.Lock()
		c.skipped++
		c.m.Unlock()
		return
	}

	cu.Finalize()

	stmts := cu.Statements()
	if !c.mod.Header {
		stmts = stripHeader(stmts)
	}

	buff := &bytes.Buffer{}
	if err := luaast.NewRenderer(buff).Render(stmts...); err != nil {
		c.reportUnitError(manifestPath, fmt.Sprintf("error rendering unit: %s", err))
		return
	}

	c.m.Lock()
	c.outputs = append(c.outputs, &unitOutput{
		manifestPath: manifestPath,
		outputPath:   filepath.Join(c.mod.OutputDir, m.OutputPath()),
		source:       buff.Bytes(),
	})
	c.m.Unlock()
}

// stripHeader removes the leading version comment
func stripHeader(stmts []luaast.Statement) []luaast.Statement {
	if len(stmts) > 0 {
		if _, ok := stmts[0].(*luaast.ShortComment); ok {
			return stmts[1:]
		}
	}

	return stmts
}

// writeOutputs writes every rendered unit and returns the total bytes written
func (c *Compiler) writeOutputs() uint64 {
	var total uint64
	for _, out := range c.outputs {
		if err := os.MkdirAll(filepath.Dir(out.outputPath), 0o755); err != nil {
			c.reportUnitError(out.manifestPath, fmt.Sprintf("error creating output directory: %s", err))
			continue
		}

		if err := os.WriteFile(out.outputPath, out.source, 0o644); err != nil {
			c.reportUnitError(out.manifestPath, fmt.Sprintf("error writing output: %s", err))
			continue
		}

		total += uint64(len(out.source))
	}

	return total
}

// checkOutputs compares every rendered unit with the file on disk and reports
// the ones which are missing or stale
func (c *Compiler) checkOutputs() {
	dmp := diffmatchpatch.New()

	for _, out := range c.outputs {
		existing, err := os.ReadFile(out.outputPath)
		if os.IsNotExist(err) {
			c.reportUnitError(out.manifestPath, fmt.Sprintf("output %s does not exist", out.outputPath))
			continue
		} else if err != nil {
			c.reportUnitError(out.manifestPath, fmt.Sprintf("error reading output: %s", err))
			continue
		}

		if bytes.Equal(existing, out.source) {
			continue
		}

		diffs := dmp.DiffMain(string(existing), string(out.source), false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		c.reportUnitError(
			out.manifestPath,
			fmt.Sprintf("output %s is stale:\n%s", out.outputPath, dmp.DiffPrettyText(diffs)),
		)
	}
}

// -----------------------------------------------------------------------------

func (c *Compiler) reportUnitError(path, msg string) {
	c.m.Lock()
	c.errorCount++
	c.m.Unlock()

	logging.LogUnitError(path, msg)
}

func (c *Compiler) reportConfigError(kind, msg string) {
	c.m.Lock()
	c.errorCount++
	c.m.Unlock()

	logging.LogConfigError(kind, msg)
}
