package lang

import (
	"errors"
	"testing"
)

func TestFromExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext    string
		want   string
		wantOK bool
	}{
		{"py", "python", true},
		{"rs", "rust", true},
		{"java", "java", true},
		{"jsx", "javascript", true},
		{"mjs", "javascript", true},
		{"ts", "typescript", true},
		{"tsx", "tsx", true},
		{"kts", "kotlin", true},
		{"hpp", "cpp", true},
		{"h", "cpp", true},
		{"c", "c", true},
		{"unknown-ext", "", false},
		{".py", "", false},
		{"", "", false},
		{"PY", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			got, ok := FromExtension(tt.ext)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromExtension(%q) = (%q, %v), want (%q, %v)", tt.ext, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromExtensionMatchesGuess(t *testing.T) {
	t.Parallel()

	// Every extension accepted by the pure lookup must be accepted by inference.
	for _, ext := range Extensions() {
		name, ok := FromExtension(ext[1:])
		if !ok {
			t.Errorf("FromExtension(%q) not found", ext[1:])
			continue
		}
		got, ok := Guess([]byte("class X {};"), "file"+ext)
		if !ok {
			t.Errorf("Guess for %s failed", ext)
			continue
		}
		if string(got) != name {
			t.Errorf("Guess for %s = %q, FromExtension = %q", ext, got, name)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	want := []string{"python", "rust", "java", "javascript", "typescript", "tsx", "kotlin", "cpp", "c"}
	got := SupportedLanguages()
	if len(got) != len(want) {
		t.Fatalf("SupportedLanguages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SupportedLanguages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got[0] = "mutated"
	if SupportedLanguages()[0] != "python" {
		t.Error("SupportedLanguages must return a fresh slice")
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	t.Parallel()

	if _, ok := Parse("python"); !ok {
		t.Error("Parse(python) failed")
	}
	if _, ok := Parse("Python"); ok {
		t.Error("Parse(Python) should fail")
	}
	if _, ok := Parse("py"); ok {
		t.Error("Parse(py) should fail: extensions are not language names")
	}
}

func TestResolveExplicit(t *testing.T) {
	t.Parallel()

	name := "rust"
	got, err := Resolve(&name, "main.py", []byte("def f(): pass"), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != LangRust {
		t.Errorf("Resolve = %q, want rust (override wins over extension)", got)
	}
}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()

	name := "cobol"
	_, err := Resolve(&name, "prog.cbl", nil, nil)
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Resolve error = %v, want ErrUnsupportedLanguage", err)
	}
	var ue *UnsupportedLanguageError
	if !errors.As(err, &ue) || ue.Token != "cobol" {
		t.Errorf("error does not name the token: %v", err)
	}
	if errors.Is(err, ErrLanguageUndetermined) {
		t.Error("unsupported and undetermined must be distinguishable")
	}
}

func TestResolveEmptyOverrideIsUnsupported(t *testing.T) {
	t.Parallel()

	empty := ""
	_, err := Resolve(&empty, "main.py", nil, nil)
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Resolve(\"\") error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestResolveUndetermined(t *testing.T) {
	t.Parallel()

	_, err := Resolve(nil, "README", []byte("hello"), nil)
	if !errors.Is(err, ErrLanguageUndetermined) {
		t.Fatalf("Resolve error = %v, want ErrLanguageUndetermined", err)
	}
	var ue *UndeterminedLanguageError
	if !errors.As(err, &ue) || ue.Path != "README" {
		t.Errorf("error does not name the path: %v", err)
	}
}

func TestResolveCustomGuess(t *testing.T) {
	t.Parallel()

	called := false
	guess := func(src []byte, path string) (Language, bool) {
		called = true
		return LangKotlin, true
	}
	got, err := Resolve(nil, "x.unknown", nil, guess)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !called || got != LangKotlin {
		t.Errorf("Resolve = %q (called=%v), want kotlin from custom guess", got, called)
	}
}

func TestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		src    string
		want   Language
		wantOK bool
	}{
		{"python", "example.py", "def foo():\n    pass", LangPython, true},
		{"upper ext", "Main.JAVA", "class Main {}", LangJava, true},
		{"c header", "util.h", "int add(int a, int b);\n", LangC, true},
		{"cpp header", "util.h", "namespace util { int add(int a, int b); }\n", LangCPP, true},
		{"cpp class header", "shape.h", "class Shape {\npublic:\n  virtual ~Shape();\n};\n", LangCPP, true},
		{"python shebang", "script", "#!/usr/bin/env python3\nprint(1)\n", LangPython, true},
		{"node shebang", "tool", "#!/usr/bin/env node\nconsole.log(1)\n", LangJavaScript, true},
		{"no hint", "Makefile", "all:\n\techo hi\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Guess([]byte(tt.src), tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Guess(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
