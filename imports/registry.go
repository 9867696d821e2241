package imports

// Origin classifies where an import request came from
type Origin int

// Enumeration of import origins
const (
	LibraryImport Origin = iota // added automatically for library support
	SourceUsing                 // an explicit using-directive in the source
)

func (o Origin) String() string {
	switch o {
	case LibraryImport:
		return "library"
	case SourceUsing:
		return "using"
	default:
		return "unknown"
	}
}

// Entry is a single namespace reference discovered during translation
type Entry struct {
	// Prefix is the dotted namespace path as it appears in source
	Prefix string

	// Alias is the local identifier the generated code uses for the namespace
	Alias string

	Origin Origin
}

// Registry is the append-only collection of import entries for one file.  It
// holds at most one entry per prefix: the first registration wins.  A registry
// is owned by a single compilation unit and is not safe for concurrent use.
type Registry struct {
	entries []Entry

	// index maps a prefix to its position in entries
	index map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register records an import request.  Registering a prefix that is already
// present does nothing.  It returns whether a new entry was added.
func (r *Registry) Register(prefix, alias string, origin Origin) bool {
	if _, ok := r.index[prefix]; ok {
		return false
	}

	r.index[prefix] = len(r.entries)
	r.entries = append(r.entries, Entry{Prefix: prefix, Alias: alias, Origin: origin})
	return true
}

// Lookup returns the entry registered for a prefix
func (r *Registry) Lookup(prefix string) (Entry, bool) {
	if i, ok := r.index[prefix]; ok {
		return r.entries[i], true
	}

	return Entry{}, false
}

// Entries returns a copy of all entries in discovery order
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of distinct prefixes registered
func (r *Registry) Len() int {
	return len(r.entries)
}
