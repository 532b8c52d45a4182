package pprint

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Character is the set of character kinds: bytes of UTF-8 text and runes.
type Character interface {
	~byte | ~rune
}

// Container is any ordered collection that can enumerate its elements.
type Container[E any] interface {
	All() iter.Seq[E]
}

// StringLike is a Container that also knows its own text form. Such types
// are printed through String and never wrapped in brackets.
//
// The probe is structural: any type with both methods qualifies, whether or
// not it is conceptually a string.
type StringLike[E any] interface {
	Container[E]
	fmt.Stringer
}

// Kind is the shape a type is classified into.
type Kind int

const (
	KindNone Kind = iota
	KindCharacter
	KindStringLike
	KindContainer
	KindArray
)

var kindNames = [...]string{
	KindNone:       "none",
	KindCharacter:  "character",
	KindStringLike: "string-like",
	KindContainer:  "container",
	KindArray:      "array",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCharacter reports whether T is a byte or rune kind. Go does not tell
// uint8 from byte or int32 from rune, so those count as characters too.
func IsCharacter[T any]() bool {
	return isCharacterType(reflect.TypeFor[T]())
}

// IsStringLike reports whether T is a container of E that also has a String
// method.
func IsStringLike[T, E any]() bool {
	t := reflect.TypeFor[T]()
	return isContainerOf[E](t) && t.Implements(stringerType)
}

// IsContainer reports whether T is a container of E and is not string-like.
// Besides implementers of [Container], native slices of E and native maps
// whose entries are Pair[K, V] with E being that pair type qualify.
func IsContainer[T, E any]() bool {
	t := reflect.TypeFor[T]()
	return isContainerOf[E](t) && !t.Implements(stringerType)
}

// IsArray reports whether T is a fixed-size array whose element type, with
// every array extent and one level of pointer stripped, is not a character.
func IsArray[T any]() bool {
	return isArrayType(reflect.TypeFor[T]())
}

// Classify places T into exactly one [Kind]. E is the element type used for
// the container probes; it is ignored for the other kinds. Printing follows
// the same rules: containers and arrays are written in brackets, the rest
// through their own text.
func Classify[T, E any]() Kind {
	switch {
	case IsCharacter[T]():
		return KindCharacter
	case IsStringLike[T, E]():
		return KindStringLike
	case IsContainer[T, E]():
		return KindContainer
	case IsArray[T]():
		return KindArray
	default:
		return KindNone
	}
}

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	pairPkgPath  = reflect.TypeFor[Pair[int, int]]().PkgPath()
)

func isContainerOf[E any](t reflect.Type) bool {
	e := reflect.TypeFor[E]()
	switch {
	case t.Implements(reflect.TypeFor[Container[E]]()):
		return true
	case t.Kind() == reflect.Slice:
		return t.Elem() == e
	case t.Kind() == reflect.Map:
		return isPairOf(e, t.Key(), t.Elem())
	default:
		return false
	}
}

// isPairOf reports whether p is Pair[k, v].
func isPairOf(p, k, v reflect.Type) bool {
	if p.Kind() != reflect.Struct || p.PkgPath() != pairPkgPath || !strings.HasPrefix(p.Name(), "Pair[") {
		return false
	}
	return p.NumField() == 2 && p.Field(0).Type == k && p.Field(1).Type == v
}

// kindOf classifies a dynamic type the way Classify classifies a static one,
// with the element type taken from the type itself.
func kindOf(t reflect.Type) Kind {
	switch {
	case isCharacterType(t):
		return KindCharacter
	case isSequenceType(t) && t.Implements(stringerType):
		return KindStringLike
	case isSequenceType(t):
		return KindContainer
	case isArrayType(t):
		return KindArray
	default:
		return KindNone
	}
}

func isSequenceType(t reflect.Type) bool {
	if _, ok := allMethod(t); ok {
		return true
	}
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Map
}

// allMethod finds an All method of the shape func() iter.Seq[E] on a
// concrete type.
func allMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName("All")
	if !ok || t.Kind() == reflect.Interface {
		return m, false
	}
	ft := m.Type
	if ft.NumIn() != 1 || ft.NumOut() != 1 {
		return m, false
	}
	seq := ft.Out(0)
	if seq.Kind() != reflect.Func || seq.NumIn() != 1 || seq.NumOut() != 0 {
		return m, false
	}
	yield := seq.In(0)
	ok = yield.Kind() == reflect.Func && yield.NumIn() == 1 &&
		yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
	return m, ok
}

func isArrayType(t reflect.Type) bool {
	return t.Kind() == reflect.Array && !isCharacterType(removeAll(t))
}

func isCharacterType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint8, reflect.Int32:
		return true
	default:
		return false
	}
}

func removeAll(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
