package engine

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func javaProfile() *Profile {
	return &Profile{
		Language: lang.LangJava,
		grammar:  java.GetLanguage,

		Spaces: map[string]space.Kind{
			"method_declaration":      space.Function,
			"constructor_declaration": space.Function,
			"lambda_expression":       space.Function,
			"class_declaration":       space.Class,
			"enum_declaration":        space.Class,
			"record_declaration":      space.Class,
			"interface_declaration":   space.Interface,
		},
		Closures: newSet("lambda_expression"),

		Comments: newSet("line_comment", "block_comment", "comment"),

		Decisions: newSet(
			"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
			"do_statement", "catch_clause", "ternary_expression",
		),
		DecisionTokens: tokenRule{"case": newSet("switch_label")},
		BoolOps:        newSet("&&", "||"),
		BoolParents:    newSet("binary_expression"),

		Nesting: newSet(
			"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
			"do_statement", "switch_expression", "switch_statement", "catch_clause",
			"ternary_expression",
		),
		Ifs: newSet("if_statement"),

		Exits: newSet("return_statement", "throw_statement"),

		Assignments:  newSet("assignment_expression", "update_expression"),
		Initializers: newSet("variable_declarator"),
		Calls:        newSet("method_invocation", "object_creation_expression", "explicit_constructor_invocation"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"instanceof": nil,
			"else":       nil, "case": nil, "default": newSet("switch_label"),
			"try": nil, "catch": nil, "?": newSet("ternary_expression"),
		},

		Statements:    newSet("local_variable_declaration"),
		NotStatements: newSet("block_statement"),

		Operands: newSet(
			"identifier", "type_identifier", "decimal_integer_literal",
			"hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
			"decimal_floating_point_literal", "hex_floating_point_literal",
			"string_literal", "character_literal", "true", "false", "null_literal",
			"this", "super",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";"),

		ParamLists: newSet("formal_parameters", "inferred_parameters"),

		Fields:     newSet("field_declaration", "constant_declaration"),
		fieldCount: javaDeclarators,
		isPublic:   javaPublic,
	}
}

// javaDeclarators counts `int a, b;` as two attributes.
func javaDeclarators(n *sitter.Node) int {
	count := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c != nil && c.Type() == "variable_declarator" {
			count++
		}
	}
	return count
}

func javaPublic(n *sitter.Node, _ *region, _ []byte) bool {
	mods := childOfType(n, "modifiers")
	return mods != nil && hasToken(mods, "public")
}
