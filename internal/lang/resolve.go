package lang

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// GuessFunc infers a language from source bytes and a path.
type GuessFunc func(src []byte, path string) (Language, bool)

// Resolve picks the language for a source unit. An explicit override is looked up
// in the supported table; otherwise guess (Guess when nil) infers it.
func Resolve(override *string, path string, src []byte, guess GuessFunc) (Language, error) {
	if override != nil {
		l, ok := Parse(*override)
		if !ok {
			return "", &UnsupportedLanguageError{Token: *override}
		}
		return l, nil
	}

	if guess == nil {
		guess = Guess
	}
	l, ok := guess(src, path)
	if !ok {
		return "", &UndeterminedLanguageError{Path: path}
	}
	return l, nil
}

var (
	cppMarkers = regexp.MustCompile(`\b(class|namespace|template|typename|virtual|constexpr)\b|::|\b(public|private|protected)\s*:`)

	shebangs = []struct {
		needle string
		lang   Language
	}{
		{"python", LangPython},
		{"ts-node", LangTypeScript},
		{"deno", LangTypeScript},
		{"node", LangJavaScript},
		{"kotlin", LangKotlin},
		{"kscript", LangKotlin},
	}
)

// Guess infers a language from the file extension, falling back to the content
// for ambiguous headers and extension-less scripts.
func Guess(src []byte, path string) (Language, bool) {
	ext := filepath.Ext(path)
	l, ok := ForExtension(ext)
	if !ok {
		l, ok = ForExtension(strings.ToLower(ext))
	}
	if ok {
		if strings.EqualFold(ext, ".h") && !cppMarkers.Match(src) {
			return LangC, true
		}
		return l, true
	}
	return guessFromShebang(src)
}

func guessFromShebang(src []byte) (Language, bool) {
	if !bytes.HasPrefix(src, []byte("#!")) {
		return "", false
	}
	line := src
	if i := bytes.IndexByte(src, '\n'); i >= 0 {
		line = src[:i]
	}
	for _, s := range shebangs {
		if bytes.Contains(line, []byte(s.needle)) {
			return s.lang, true
		}
	}
	return "", false
}
