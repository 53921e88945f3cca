package engine

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func cProfile() *Profile {
	return clikeProfile(lang.LangC, c.GetLanguage)
}

func cppProfile() *Profile {
	p := clikeProfile(lang.LangCPP, cpp.GetLanguage)
	p.Spaces["lambda_expression"] = space.Function
	p.Spaces["class_specifier"] = space.Class
	p.Spaces["namespace_definition"] = space.Namespace
	p.Closures = newSet("lambda_expression")
	p.RequireBody["class_specifier"] = true
	p.RequireBody["namespace_definition"] = true

	p.Decisions["for_range_loop"] = true
	p.Decisions["catch_clause"] = true
	p.Nesting["for_range_loop"] = true
	p.Nesting["catch_clause"] = true
	p.Exits["throw_statement"] = true
	p.Calls["new_expression"] = true
	p.ConditionTokens["try"] = nil
	p.ConditionTokens["catch"] = nil

	for _, t := range []string{"namespace_identifier", "raw_string_literal", "nullptr", "this"} {
		p.Operands[t] = true
	}

	p.MethodSignatures = newSet("field_declaration", "declaration")
	p.isSignature = declaresFunction
	p.isPublic = cppPublic
	return p
}

// clikeProfile covers C; the C++ grammar is a superset.
func clikeProfile(l lang.Language, grammar func() *sitter.Language) *Profile {
	return &Profile{
		Language: l,
		grammar:  grammar,

		Spaces: map[string]space.Kind{
			"function_definition": space.Function,
			"struct_specifier":    space.Struct,
		},
		RequireBody: newSet("struct_specifier"),

		Comments: newSet("comment"),

		Decisions: newSet(
			"if_statement", "for_statement", "while_statement", "do_statement",
			"conditional_expression",
		),
		DecisionTokens: tokenRule{"case": newSet("case_statement")},
		BoolOps:        newSet("&&", "||"),
		BoolParents:    newSet("binary_expression"),

		Nesting: newSet(
			"if_statement", "for_statement", "while_statement", "do_statement",
			"switch_statement", "conditional_expression",
		),
		Ifs:         newSet("if_statement"),
		ElseClauses: newSet("else_clause"),

		Exits: newSet("return_statement"),

		Assignments:  newSet("assignment_expression", "update_expression"),
		Initializers: newSet("init_declarator"),
		Calls:        newSet("call_expression"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"else": nil, "case": nil, "default": newSet("case_statement"),
			"?": newSet("conditional_expression"),
		},

		Statements:    newSet("declaration"),
		NotStatements: newSet("compound_statement"),

		Operands: newSet(
			"identifier", "field_identifier", "type_identifier", "primitive_type",
			"statement_identifier", "number_literal", "string_literal", "char_literal",
			"concatenated_string", "system_lib_string", "true", "false", "null",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";"),

		ParamLists: newSet("parameter_list"),

		Fields:     newSet("field_declaration"),
		fieldCount: clikeFieldCount,
	}
}

// declaresFunction reports whether a declaration declares a function rather
// than data, e.g. `virtual void draw() = 0;`.
func declaresFunction(n *sitter.Node) bool {
	for d, depth := n.ChildByFieldName("declarator"), 0; d != nil && depth < 8; depth++ {
		if d.Type() == "function_declarator" {
			return true
		}
		d = d.ChildByFieldName("declarator")
	}
	return false
}

func clikeFieldCount(n *sitter.Node) int {
	if declaresFunction(n) {
		return 0
	}
	count := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		if t := c.Type(); t == "field_identifier" || strings.HasSuffix(t, "_declarator") {
			count++
		}
	}
	return count
}

// cppPublic applies the nearest preceding access specifier, defaulting to
// private in classes and public in structs.
func cppPublic(n *sitter.Node, owner *region, src []byte) bool {
	anchor := n
	if par := n.Parent(); par != nil && par.Type() == "template_declaration" {
		anchor = par
	}
	for prev := anchor.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if prev.Type() == "access_specifier" {
			return strings.HasPrefix(prev.Content(src), "public")
		}
	}
	return owner.kind != space.Class
}
