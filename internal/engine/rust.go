package engine

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/space"
)

func rustProfile() *Profile {
	return &Profile{
		Language: lang.LangRust,
		grammar:  rust.GetLanguage,

		Spaces: map[string]space.Kind{
			"function_item":      space.Function,
			"closure_expression": space.Function,
			"impl_item":          space.Impl,
			"trait_item":         space.Trait,
			"struct_item":        space.Struct,
			"mod_item":           space.Namespace,
		},
		Closures:    newSet("closure_expression"),
		RequireBody: newSet("mod_item", "struct_item"),

		Comments: newSet("line_comment", "block_comment"),

		Decisions: newSet(
			"if_expression", "for_expression", "while_expression", "loop_expression",
			"match_arm", "try_expression",
		),
		BoolOps:     newSet("&&", "||"),
		BoolParents: newSet("binary_expression"),

		Nesting: newSet(
			"if_expression", "for_expression", "while_expression", "loop_expression",
			"match_expression",
		),
		Ifs:         newSet("if_expression"),
		ElseClauses: newSet("else_clause"),

		Exits: newSet("return_expression"),

		Assignments:  newSet("assignment_expression", "compound_assignment_expr"),
		Initializers: newSet("let_declaration"),
		Calls:        newSet("call_expression", "macro_invocation"),
		ConditionTokens: tokenRule{
			"==": comparisonParents, "!=": comparisonParents,
			"<": comparisonParents, ">": comparisonParents,
			"<=": comparisonParents, ">=": comparisonParents,
			"else": nil, "?": newSet("try_expression"),
		},

		Statements: newSet("let_declaration"),

		Operands: newSet(
			"identifier", "field_identifier", "type_identifier", "primitive_type",
			"shorthand_field_identifier", "integer_literal", "float_literal",
			"string_literal", "raw_string_literal", "char_literal", "boolean_literal",
			"self", "metavariable",
		),
		IgnoreTokens: newSet(")", "]", "}", ",", ";"),

		Fields:           newSet("field_declaration"),
		MethodSignatures: newSet("function_signature_item"),

		nameOf:    rustName,
		isPublic:  rustPublic,
		allPublic: rustTraitImpl,
	}
}

// rustName names an impl block after the implementing type.
func rustName(n *sitter.Node, src []byte) (string, bool) {
	if n.Type() == "impl_item" {
		if t := n.ChildByFieldName("type"); t != nil {
			return t.Content(src), true
		}
	}
	return defaultName(n, src)
}

func rustPublic(n *sitter.Node, _ *region, _ []byte) bool {
	return childOfType(n, "visibility_modifier") != nil
}

// rustTraitImpl marks `impl Trait for T` blocks, whose methods are public
// wherever the trait is.
func rustTraitImpl(n *sitter.Node) bool {
	return n.Type() == "impl_item" && n.ChildByFieldName("trait") != nil
}
