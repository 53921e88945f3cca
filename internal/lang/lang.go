// Package lang resolves which grammar and metrics profile applies to a source unit.
package lang

import "strings"

// Language represents a supported programming language.
type Language string

const (
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangKotlin     Language = "kotlin"
	LangCPP        Language = "cpp"
	LangC          Language = "c"
)

// supported lists every language in the order reported to callers.
var supported = []Language{
	LangPython,
	LangRust,
	LangJava,
	LangJavaScript,
	LangTypeScript,
	LangTSX,
	LangKotlin,
	LangCPP,
	LangC,
}

// FileExtensions maps each language to its recognized file extensions.
// A ".h" header defaults to C++; Guess refines it from content.
var FileExtensions = map[Language][]string{
	LangPython:     {".py", ".pyi"},
	LangRust:       {".rs"},
	LangJava:       {".java"},
	LangJavaScript: {".js", ".jsx", ".mjs", ".cjs"},
	LangTypeScript: {".ts", ".mts", ".cts"},
	LangTSX:        {".tsx"},
	LangKotlin:     {".kt", ".kts"},
	LangCPP:        {".cpp", ".cxx", ".cc", ".hpp", ".hxx", ".hh", ".h"},
	LangC:          {".c"},
}

var extIndex = buildExtIndex()

func buildExtIndex() map[string]Language {
	idx := make(map[string]Language)
	for _, l := range supported {
		for _, ext := range FileExtensions[l] {
			idx[ext] = l
		}
	}
	return idx
}

// SupportedLanguages returns the names accepted as an explicit language override.
func SupportedLanguages() []string {
	names := make([]string, len(supported))
	for i, l := range supported {
		names[i] = string(l)
	}
	return names
}

// Parse looks up an explicit language name. The lookup is case-sensitive.
func Parse(name string) (Language, bool) {
	for _, l := range supported {
		if string(l) == name {
			return l, true
		}
	}
	return "", false
}

// FromExtension returns the language name for a bare extension such as "py" or "rs".
// Unknown extensions report false; they are not an error.
func FromExtension(ext string) (string, bool) {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return "", false
	}
	l, ok := extIndex["."+ext]
	if !ok {
		return "", false
	}
	return string(l), true
}

// ForExtension returns the language registered for a dotted extension (".py").
func ForExtension(ext string) (Language, bool) {
	l, ok := extIndex[ext]
	return l, ok
}

// Extensions returns all dotted extensions that map to a supported language.
func Extensions() []string {
	exts := make([]string, 0, len(extIndex))
	for _, l := range supported {
		exts = append(exts, FileExtensions[l]...)
	}
	return exts
}
