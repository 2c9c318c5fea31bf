package field

import "fmt"

type Type string

const (
	String Type = "String"
	Number Type = "Number"
	Nested Type = "Nested"
)

// Types lists the selectable types in display order.
var Types = []Type{String, Number, Nested}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

func (t Type) Valid() bool {
	switch t {
	case String, Number, Nested:
		return true
	}
	return false
}

// Next cycles String -> Number -> Nested -> String.
func (t Type) Next() Type {
	switch t {
	case String:
		return Number
	case Number:
		return Nested
	default:
		return String
	}
}

func (t Type) String() string {
	return string(t)
}
