package common

import "strings"

// IsValidIdentifier returns whether or not a given string would be a valid Lua
// identifier (module name, alias, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}

// TrimUnitExtension strips a unit manifest extension from a path if it has
// one.  The second return value indicates whether the path was a manifest.
func TrimUnitExtension(path string) (string, bool) {
	for _, ext := range []string{UnitTOMLExtension, UnitYAMLExtension} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext), true
		}
	}

	return path, false
}
