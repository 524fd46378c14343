package tree

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a value held in a tree.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNull   // null
	KindBool   // boolean
	KindNumber // number
	KindString // string
	KindObject // object
	KindArray  // array
)

// KindOf reports the kind of v. Values outside the tree model yield the zero Kind.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case *Object:
		return KindObject
	case []any:
		return KindArray
	default:
		return 0
	}
}

// IsContainer returns true for objects and arrays.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}
