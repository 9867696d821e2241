package imports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/000hahaha000/CSharp.lua/imports"
)

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	r := imports.NewRegistry()
	assert.True(t, r.Register("MyApp.Models", "Models", imports.SourceUsing))
	assert.False(t, r.Register("MyApp.Models", "M", imports.LibraryImport))
	assert.False(t, r.Register("MyApp.Models", "Models", imports.SourceUsing))

	assert.Equal(t, 1, r.Len())

	e, ok := r.Lookup("MyApp.Models")
	assert.True(t, ok)
	assert.Equal(t, imports.Entry{Prefix: "MyApp.Models", Alias: "Models", Origin: imports.SourceUsing}, e)
}

func TestRegistry_DiscoveryOrder(t *testing.T) {
	t.Parallel()

	r := imports.NewRegistry()
	r.Register("System.Linq", "Linq", imports.LibraryImport)
	r.Register("A", "A", imports.SourceUsing)
	r.Register("System.Linq", "Other", imports.SourceUsing)
	r.Register("B.C", "C", imports.SourceUsing)

	var prefixes []string
	for _, e := range r.Entries() {
		prefixes = append(prefixes, e.Prefix)
	}

	assert.Equal(t, []string{"System.Linq", "A", "B.C"}, prefixes)
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	r := imports.NewRegistry()
	r.Register("A", "A", imports.SourceUsing)

	entries := r.Entries()
	entries[0].Alias = "changed"

	e, _ := r.Lookup("A")
	assert.Equal(t, "A", e.Alias)
}

func TestRegistry_LookupMissing(t *testing.T) {
	t.Parallel()

	_, ok := imports.NewRegistry().Lookup("Nope")
	assert.False(t, ok)
}

func TestOrigin_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "library", imports.LibraryImport.String())
	assert.Equal(t, "using", imports.SourceUsing.String())
}
