package lang

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLanguage is matched by errors for explicit language names that are not supported.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrLanguageUndetermined is matched by errors raised when no language could be inferred.
	ErrLanguageUndetermined = errors.New("could not determine language")
)

// UnsupportedLanguageError reports an explicit language token missing from the supported table.
type UnsupportedLanguageError struct {
	Token string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q: run 'codemetrics languages' (or call lang.SupportedLanguages) to see available options", e.Token)
}

// Is reports whether target is ErrUnsupportedLanguage.
func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrUnsupportedLanguage
}

// UndeterminedLanguageError reports a source unit whose language could not be inferred.
type UndeterminedLanguageError struct {
	Path string
}

func (e *UndeterminedLanguageError) Error() string {
	return fmt.Sprintf("could not determine language from file extension: %q", e.Path)
}

// Is reports whether target is ErrLanguageUndetermined.
func (e *UndeterminedLanguageError) Is(target error) bool {
	return target == ErrLanguageUndetermined
}
