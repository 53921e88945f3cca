package engine

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func javascriptProfile() *Profile {
	return ecmaProfile(lang.LangJavaScript, javascript.GetLanguage)
}

func typescriptProfile() *Profile {
	return withTypes(ecmaProfile(lang.LangTypeScript, typescript.GetLanguage))
}

func tsxProfile() *Profile {
	return withTypes(ecmaProfile(lang.LangTSX, tsx.GetLanguage))
}

// ecmaProfile covers the JavaScript grammar, which the TypeScript grammars extend.
func ecmaProfile(l lang.Language, grammar func() *sitter.Language) *Profile {
	return &Profile{
		Language: l,
		grammar:  grammar,

		Spaces: map[string]space.Kind{
			"function_declaration":           space.Function,
			"generator_function_declaration": space.Function,
			"method_definition":              space.Function,
			"function":                       space.Function,
			"function_expression":            space.Function,
			"generator_function":             space.Function,
			"arrow_function":                 space.Function,
			"class_declaration":              space.Class,
			"class":                          space.Class,
		},
		Closures: newSet("function", "function_expression", "generator_function", "arrow_function"),

		Comments: newSet("comment", "html_comment"),

		Decisions: newSet(
			"if_statement", "for_statement", "for_in_statement", "while_statement",
			"do_statement", "catch_clause", "ternary_expression", "switch_case",
		),
		BoolOps:     newSet("&&", "||", "??"),
		BoolParents: newSet("binary_expression"),

		Nesting: newSet(
			"if_statement", "for_statement", "for_in_statement", "while_statement",
			"do_statement", "switch_statement", "catch_clause", "ternary_expression",
		),
		Ifs:         newSet("if_statement"),
		ElseClauses: newSet("else_clause"),

		Exits: newSet("return_statement", "throw_statement"),

		Assignments:  newSet("assignment_expression", "augmented_assignment_expression", "update_expression"),
		Initializers: newSet("variable_declarator"),
		Calls:        newSet("call_expression", "new_expression"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"===": comparisonParents, "!==": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"instanceof": nil,
			"else":       nil, "case": nil, "default": newSet("switch_default"),
			"try": nil, "catch": nil, "?": newSet("ternary_expression"),
		},

		Statements:    newSet("lexical_declaration", "variable_declaration"),
		NotStatements: newSet("empty_statement"),

		Operands: newSet(
			"identifier", "property_identifier", "private_property_identifier",
			"shorthand_property_identifier", "shorthand_property_identifier_pattern",
			"statement_identifier", "number", "string", "template_string", "regex",
			"true", "false", "null", "undefined", "this", "super",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";"),

		Fields: newSet("field_definition"),

		isPublic: ecmaPublic,
	}
}

// withTypes adds the TypeScript-only declarations to an ECMAScript profile.
func withTypes(p *Profile) *Profile {
	p.Spaces["abstract_class_declaration"] = space.Class
	p.Spaces["interface_declaration"] = space.Interface
	p.Spaces["internal_module"] = space.Namespace
	p.Spaces["module"] = space.Namespace
	p.RequireBody = newSet("internal_module", "module")

	p.Operands["type_identifier"] = true
	p.Operands["predefined_type"] = true

	p.Fields["public_field_definition"] = true
	p.Fields["property_signature"] = true
	p.MethodSignatures = newSet("method_signature", "abstract_method_signature")
	return p
}

// ecmaPublic treats #private names and private/protected modifiers as hidden.
func ecmaPublic(n *sitter.Node, _ *region, src []byte) bool {
	if childOfType(n, "private_property_identifier") != nil {
		return false
	}
	if mod := childOfType(n, "accessibility_modifier"); mod != nil {
		return mod.Content(src) == "public"
	}
	return true
}
