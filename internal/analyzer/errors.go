package analyzer

import (
	"errors"
	"fmt"

	"github.com/imyousuf/CodeMetrics/internal/lang"
)

var (
	// ErrIO matches failures to read a source file.
	ErrIO = errors.New("i/o failure")
	// ErrParse matches failures of the engine to produce a region tree.
	ErrParse = errors.New("parse failure")

	// ErrUnsupportedLanguage and ErrLanguageUndetermined are the resolution
	// failures, re-exported so callers need only this package.
	ErrUnsupportedLanguage  = lang.ErrUnsupportedLanguage
	ErrLanguageUndetermined = lang.ErrLanguageUndetermined
)

// IOError reports a file that could not be read as UTF-8 text.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// ParseError reports that the engine failed on an otherwise resolved unit.
type ParseError struct {
	Path     string
	Language lang.Language
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("analyzing %s as %s: %v", e.Path, e.Language, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

var errNotUTF8 = errors.New("content is not valid UTF-8")
