package engine

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

var comparisonParents = newSet(
	"binary_expression",
	"comparison_operator",
	"comparison_expression",
	"equality_expression",
)

func pythonProfile() *Profile {
	return &Profile{
		Language: lang.LangPython,
		grammar:  python.GetLanguage,

		Spaces: map[string]space.Kind{
			"function_definition": space.Function,
			"lambda":              space.Function,
			"class_definition":    space.Class,
		},
		Closures: newSet("lambda"),

		Comments:   newSet("comment"),
		DocStrings: true,

		Decisions: newSet(
			"if_statement", "elif_clause", "for_statement", "while_statement",
			"except_clause", "with_statement", "assert_statement",
			"conditional_expression", "for_in_clause", "if_clause", "case_clause",
		),
		BoolOps:     newSet("and", "or"),
		BoolParents: newSet("boolean_operator"),

		Nesting: newSet(
			"if_statement", "for_statement", "while_statement", "except_clause",
			"conditional_expression", "match_statement",
		),
		Flat:        newSet("elif_clause"),
		Ifs:         newSet("if_statement"),
		ElseClauses: newSet("else_clause"),

		Exits: newSet("return_statement", "raise_statement"),

		Assignments: newSet("assignment", "augmented_assignment", "named_expression"),
		Calls:       newSet("call"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"in": newSet("comparison_operator"), "is": newSet("comparison_operator"),
			"else": nil, "elif": nil, "try": nil, "except": nil, "case": nil,
		},

		NotStatements: newSet("block"),

		Operands: newSet(
			"identifier", "integer", "float", "string", "concatenated_string",
			"true", "false", "none", "ellipsis",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";", ":"),

		ParamSkip: newSet("keyword_separator", "positional_separator"),

		Fields: newSet("assignment"),

		fieldCount: pythonClassAttribute,
		isPublic:   pythonPublic,
	}
}

// pythonClassAttribute counts `name = value` directly in a class body.
func pythonClassAttribute(n *sitter.Node) int {
	stmt := n.Parent()
	if stmt == nil || stmt.Type() != "expression_statement" {
		return 0
	}
	block := stmt.Parent()
	if block == nil || block.Type() != "block" {
		return 0
	}
	if owner := block.Parent(); owner == nil || owner.Type() != "class_definition" {
		return 0
	}
	return 1
}

// pythonPublic follows the leading-underscore convention; dunder names are public.
func pythonPublic(n *sitter.Node, _ *region, src []byte) bool {
	name := n.ChildByFieldName("name")
	if name == nil {
		name = n.ChildByFieldName("left")
	}
	if name == nil {
		return true
	}
	id := name.Content(src)
	if strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__") {
		return true
	}
	return !strings.HasPrefix(id, "_")
}
