package engine

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func kotlinProfile() *Profile {
	return &Profile{
		Language: lang.LangKotlin,
		grammar:  kotlin.GetLanguage,

		Spaces: map[string]space.Kind{
			"function_declaration": space.Function,
			"anonymous_function":   space.Function,
			"lambda_literal":       space.Function,
			"class_declaration":    space.Class,
			"object_declaration":   space.Class,
		},
		Closures: newSet("anonymous_function", "lambda_literal"),

		Comments: newSet("line_comment", "multiline_comment", "comment"),

		Decisions: newSet(
			"if_expression", "for_statement", "while_statement", "do_while_statement",
			"catch_block", "when_entry",
		),
		BoolOps:     newSet("&&", "||", "?:"),
		BoolParents: newSet("conjunction_expression", "disjunction_expression", "elvis_expression"),

		Nesting: newSet(
			"if_expression", "for_statement", "while_statement", "do_while_statement",
			"when_expression", "catch_block",
		),
		Ifs:      newSet("if_expression"),
		Wrappers: newSet("control_structure_body"),

		ExitTokens: tokenRule{"return": newSet("jump_expression"), "throw": newSet("jump_expression")},

		Assignments:  newSet("assignment"),
		Initializers: newSet("property_declaration"),
		Calls:        newSet("call_expression"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"===": comparisonParents, "!==": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"else": nil, "try": nil, "catch": nil,
		},

		StatementLists: newSet("statements"),

		Operands: newSet(
			"simple_identifier", "type_identifier", "integer_literal", "long_literal",
			"hex_literal", "bin_literal", "real_literal", "string_literal",
			"character_literal", "boolean_literal", "null_literal", "this_expression",
			"super_expression",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";"),

		ParamLists: newSet("function_value_parameters", "lambda_parameters"),

		Fields: newSet("property_declaration"),

		refineKind: kotlinKind,
		countParam: kotlinParam,
		isPublic:   kotlinPublic,
	}
}

// kotlinKind tells interfaces apart from classes; both are class_declaration.
func kotlinKind(n *sitter.Node, k space.Kind) (space.Kind, bool) {
	if n.Type() == "class_declaration" && hasToken(n, "interface") {
		return space.Interface, true
	}
	return k, true
}

func kotlinParam(n *sitter.Node) bool {
	switch n.Type() {
	case "parameter", "variable_declaration", "multi_variable_declaration":
		return true
	}
	return false
}

func kotlinPublic(n *sitter.Node, _ *region, src []byte) bool {
	mods := childOfType(n, "modifiers")
	if mods == nil {
		return true
	}
	vis := childOfType(mods, "visibility_modifier")
	if vis == nil {
		return true
	}
	switch vis.Content(src) {
	case "private", "protected":
		return false
	}
	return true
}
