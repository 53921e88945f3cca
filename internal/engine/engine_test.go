package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func build(t *testing.T, l lang.Language, src string) *space.Node {
	t.Helper()
	e := New(Config{})
	r, err := e.BuildRegionTree(l, []byte(src), "sample")
	require.NoError(t, err)
	node := space.Build(r)
	require.NotNil(t, node)
	return node
}

func only(t *testing.T, nodes []*space.Node, name string) *space.Node {
	t.Helper()
	for _, n := range nodes {
		if got, ok := n.Name(); ok && got == name {
			return n
		}
	}
	require.Failf(t, "node not found", "no node named %q", name)
	return nil
}

func TestRegistryHasEveryLanguage(t *testing.T) {
	reg := DefaultRegistry()

	var got []string
	for _, p := range reg.All() {
		got = append(got, string(p.Language))
		assert.NotNil(t, p.Grammar(), "grammar for %s", p.Language)
	}
	assert.Equal(t, lang.SupportedLanguages(), got)

	p, ok := reg.GetByExtension(".rs")
	require.True(t, ok)
	assert.Equal(t, lang.LangRust, p.Language)
	assert.Contains(t, reg.SupportedExtensions(), ".kt")
}

func TestUnitRegion(t *testing.T) {
	e := New(Config{})
	r, err := e.BuildRegionTree(lang.LangPython, []byte("x = 1\ny = 2\n"), "vars.py")
	require.NoError(t, err)

	name, ok := r.Name()
	assert.True(t, ok)
	assert.Equal(t, "vars.py", name)
	assert.Equal(t, space.Unit, r.Kind())
	assert.Equal(t, 1, r.StartLine())
	assert.Equal(t, 2, r.EndLine())
	assert.Empty(t, r.Children())
}

func TestPythonSimpleFunction(t *testing.T) {
	root := build(t, lang.LangPython, "def foo():\n    pass\n")

	m := root.Metrics()
	assert.GreaterOrEqual(t, m.Nom.Functions, 1.0)
	assert.GreaterOrEqual(t, m.Cyclomatic.Sum, 1.0)

	fns := root.Functions()
	require.Len(t, fns, 1)
	name, _ := fns[0].Name()
	assert.Equal(t, "foo", name)
	assert.Equal(t, 1, fns[0].StartLine())
	assert.Equal(t, 2, fns[0].EndLine())
}

func TestRustEmptyMain(t *testing.T) {
	root := build(t, lang.LangRust, "fn main() { }")
	require.Len(t, root.Functions(), 1)
	assert.Equal(t, 1.0, root.Metrics().Nom.Functions)
	assert.Equal(t, 0.0, root.Metrics().Nargs.TotalFunctions)
}

const pythonShape = `class Shape:
    """A shape."""
    sides = 4
    _hidden = 1

    def area(self):
        return 0

    def _scale(self, k):
        if k > 1 and k < 10:
            return k
        return 1
`

func TestPythonClass(t *testing.T) {
	root := build(t, lang.LangPython, pythonShape)

	classes := root.Classes()
	require.Len(t, classes, 1)
	shape := classes[0]
	assert.Equal(t, 2, shape.NumChildren())

	scale := only(t, root.Functions(), "_scale")
	sm := scale.Metrics()
	assert.Equal(t, 3.0, sm.Cyclomatic.Sum, "if plus one short-circuit operator")
	assert.Equal(t, 2.0, sm.Cognitive.Sum)
	assert.Equal(t, 2.0, sm.Nexits.Sum)

	cm := shape.Metrics()
	assert.Equal(t, 1.0, cm.Npm.Classes, "only area is public")
	assert.Equal(t, 1.0, cm.Npa.Classes, "only sides is public")
	assert.Equal(t, 1.0+3.0, cm.Wmc.Classes)
	assert.Equal(t, 1.0, cm.Loc.Cloc, "docstring counts as a comment")
}

func TestPythonLineCounts(t *testing.T) {
	root := build(t, lang.LangPython, "# comment\n\ndef f():\n    return 1\n")

	loc := root.Metrics().Loc
	assert.Equal(t, 4.0, loc.Sloc)
	assert.Equal(t, 2.0, loc.Ploc)
	assert.Equal(t, 1.0, loc.Cloc)
	assert.Equal(t, 1.0, loc.Blank)
	assert.Equal(t, 1.0, loc.Lloc)

	fn := root.Functions()[0]
	assert.Equal(t, 2.0, fn.Metrics().Loc.Sloc)
}

const javaGreeter = `public class Greeter {
    public int count;
    private String name;

    public Greeter(String name) {
        this.name = name;
    }

    public String greet(int times) {
        for (int i = 0; i < times; i++) {
            if (i > 2) {
                return name;
            }
        }
        return "";
    }

    private void reset() {}
}
`

func TestJavaClassMembers(t *testing.T) {
	root := build(t, lang.LangJava, javaGreeter)

	classes := root.Classes()
	require.Len(t, classes, 1)
	assert.Len(t, classes[0].Functions(), 3)

	greet := only(t, root.Functions(), "greet")
	gm := greet.Metrics()
	assert.Equal(t, 3.0, gm.Cyclomatic.Sum)
	assert.Equal(t, 2.0, gm.Nexits.Sum)
	assert.Equal(t, 1.0, gm.Nargs.TotalFunctions)

	cm := classes[0].Metrics()
	assert.Equal(t, 2.0, cm.Npm.Classes)
	assert.Equal(t, 1.0, cm.Npa.Classes)
	assert.Equal(t, 5.0, cm.Wmc.Classes)
	assert.Equal(t, 0.0, cm.Wmc.Interfaces)
}

func TestRustStructVisibility(t *testing.T) {
	src := `struct Point {
    x: i32,
    pub y: i32,
}

impl Point {
    pub fn new() -> Self {
        Point { x: 0, y: 0 }
    }

    fn hidden(&self) {}
}
`
	root := build(t, lang.LangRust, src)

	assert.Len(t, space.SelectByKind(root, space.Struct), 1)
	impls := space.SelectByKind(root, space.Impl)
	require.Len(t, impls, 1)
	name, _ := impls[0].Name()
	assert.Equal(t, "Point", name)

	m := root.Metrics()
	assert.Equal(t, 1.0, m.Npa.Total)
	assert.Equal(t, 1.0, m.Npm.Total)
}

func TestClosuresAreCountedSeparately(t *testing.T) {
	root := build(t, lang.LangJavaScript, "function outer(xs) {\n  return xs.map(x => x * 2);\n}\n")

	m := root.Metrics()
	assert.Equal(t, 1.0, m.Nom.Functions)
	assert.Equal(t, 1.0, m.Nom.Closures)
	assert.Equal(t, 2.0, m.Nom.Total)
	assert.Equal(t, 1.0, m.Nargs.TotalClosures)

	outer := only(t, root.Functions(), "outer")
	require.Equal(t, 1, outer.NumChildren())
	_, named := outer.Children()[0].Name()
	assert.False(t, named, "arrow functions have no name")
}

func TestFunctionWmcIsZero(t *testing.T) {
	root := build(t, lang.LangPython, "def f(x):\n    if x:\n        return 1\n    return 2\n")
	fn := root.Functions()[0]
	assert.Equal(t, 0.0, fn.Metrics().Wmc.Total)
	assert.Equal(t, 0.0, fn.Metrics().Npm.Total)
	assert.Equal(t, 0.0, fn.Metrics().Npa.Total)
}

func TestEveryLanguageProducesFiniteMetrics(t *testing.T) {
	samples := map[lang.Language]string{
		lang.LangPython:     "def f(a, b):\n    return a + b\n",
		lang.LangRust:       "fn f(a: i32) -> i32 { a + 1 }\n",
		lang.LangJava:       "class A { int f(int a) { return a + 1; } }\n",
		lang.LangJavaScript: "function f(a, b) { return a + b; }\n",
		lang.LangTypeScript: "function f(a: number): number { return a + 1; }\n",
		lang.LangTSX:        "function App(props: Props) { return <div>{props.x}</div>; }\n",
		lang.LangKotlin:     "fun f(a: Int): Int { return a + 1 }\n",
		lang.LangCPP:        "int f(int a) { return a + 1; }\n",
		lang.LangC:          "int f(int a) { return a + 1; }\n",
	}

	for l, src := range samples {
		t.Run(string(l), func(t *testing.T) {
			root := build(t, l, src)
			assert.Equal(t, 1.0, root.Metrics().Nom.Functions)

			space.Walk(root, func(n *space.Node, _ int) bool {
				for key, v := range n.Metrics().Flatten() {
					assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s %s = %v", n, key, v)
					if !strings.HasPrefix(key, "mi.") {
						assert.GreaterOrEqual(t, v, 0.0, "%s %s", n, key)
					}
				}
				return true
			})
		})
	}
}

func TestEmptySourceHasZeroRecordShape(t *testing.T) {
	root := build(t, lang.LangPython, "")
	m := root.Metrics()
	assert.Equal(t, 0.0, m.Nom.Total)
	assert.Equal(t, 0.0, m.MI.Original, "infinite index is normalized")
	assert.Equal(t, 1, root.StartLine())
	assert.Equal(t, 1, root.EndLine())
}

func TestStrictModeRejectsSyntaxErrors(t *testing.T) {
	src := []byte("def broken(:\n    pass\n")

	strict := New(Config{Strict: true})
	_, err := strict.BuildRegionTree(lang.LangPython, src, "broken.py")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Contains(t, err.Error(), "broken.py")

	var logged []string
	lenient := New(Config{Verbose: true, Logger: func(format string, args ...any) {
		logged = append(logged, format)
	}})
	r, err := lenient.BuildRegionTree(lang.LangPython, src, "broken.py")
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Len(t, logged, 1)
}

func TestMissingProfile(t *testing.T) {
	e := New(Config{Registry: NewRegistry()})
	_, err := e.BuildRegionTree(lang.LangPython, []byte("x = 1"), "x.py")
	assert.True(t, errors.Is(err, ErrNoProfile))

	_, ok := e.GuessLanguage(nil, "x.py")
	assert.False(t, ok)
}

func TestGuessLanguage(t *testing.T) {
	e := New(Config{})
	l, ok := e.GuessLanguage(nil, "src/main.rs")
	assert.True(t, ok)
	assert.Equal(t, lang.LangRust, l)

	l, ok = e.GuessLanguage([]byte("int add(int a, int b);\n"), "add.h")
	assert.True(t, ok)
	assert.Equal(t, lang.LangC, l)
}

func TestCppAccessSpecifiers(t *testing.T) {
	src := `class Widget {
    int secret;
public:
    int size;
    virtual void draw() = 0;
    int width() { return size; }
private:
    void hide() {}
};
`
	root := build(t, lang.LangCPP, src)

	classes := root.Classes()
	require.Len(t, classes, 1)
	cm := classes[0].Metrics()
	assert.Equal(t, 1.0, cm.Npa.Classes)
	assert.Equal(t, 2.0, cm.Npm.Classes, "width plus the draw declaration")
}

func TestTypeScriptInterface(t *testing.T) {
	src := `interface Shape {
  name: string;
  area(): number;
}
`
	root := build(t, lang.LangTypeScript, src)

	ifaces := space.SelectByKind(root, space.Interface)
	require.Len(t, ifaces, 1)
	m := ifaces[0].Metrics()
	assert.Equal(t, 1.0, m.Npa.Interfaces)
	assert.Equal(t, 1.0, m.Npm.Interfaces)
}

func TestKotlinInterfaceKind(t *testing.T) {
	root := build(t, lang.LangKotlin, "interface Named {\n    fun name(): String\n}\n\nclass Dog : Named {\n    override fun name() = \"dog\"\n}\n")
	assert.Len(t, space.SelectByKind(root, space.Interface), 1)
	assert.Len(t, root.Classes(), 1)
}

func TestDeterministic(t *testing.T) {
	a := build(t, lang.LangJava, javaGreeter)
	b := build(t, lang.LangJava, javaGreeter)
	assert.Equal(t, a.Digest(), b.Digest())
}
