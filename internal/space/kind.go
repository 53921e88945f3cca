// Package space models a source file as an immutable tree of nested code regions,
// each carrying a full metrics record, and provides read-only queries over it.
package space

import "fmt"

// Kind classifies a code region.
type Kind uint8

const (
	Unknown Kind = iota
	Function
	Class
	Struct
	Trait
	Impl
	Unit
	Namespace
	Interface
)

var kindNames = [...]string{
	Unknown:   "unknown",
	Function:  "function",
	Class:     "class",
	Struct:    "struct",
	Trait:     "trait",
	Impl:      "impl",
	Unit:      "unit",
	Namespace: "namespace",
	Interface: "interface",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Unknown, Function, Class, Struct, Trait, Impl, Unit, Namespace, Interface}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Unknown, false
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown region kind %q", string(b))
	}
	*k = parsed
	return nil
}
