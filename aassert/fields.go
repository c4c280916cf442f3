package aassert

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that object, a struct or a pointer to one, has expected exported fields.
// Fields of embedded and nested structs are counted as well.
//
// When a struct that is mapped into another layer gets a new field, the assertion fails
// and points to the mapping functions that need to be updated.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	typ, ok := structType(object)
	if !ok {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	if n := len(fieldNames(typ, "")); n != expected {
		t.Log("The number of exported fields of " + typ.String() + " changed.")
		t.Log("Check all functions mapping it from or to other layers, then correct the expected count in " + t.Name())

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", n, expected), msgAndArgs...)
	}

	return true
}

// SameFields asserts that both structs have exported fields of the same names.
// The types of the fields are not compared, so a struct can be checked against
// its partial version, e.g. one with all fields as pointers.
func SameFields(t *testing.T, expected any, actual any, msgAndArgs ...any) bool {
	t.Helper()

	expType, ok := structType(expected)
	if !ok {
		return assert.Fail(t, "invalid argument, expected has to be a struct", msgAndArgs...)
	}

	actType, ok := structType(actual)
	if !ok {
		return assert.Fail(t, "invalid argument, actual has to be a struct", msgAndArgs...)
	}

	exp := fieldNames(expType, "")
	act := fieldNames(actType, "")

	var missing, extra []string

	for _, name := range exp {
		if !slices.Contains(act, name) {
			missing = append(missing, name)
		}
	}

	for _, name := range act {
		if !slices.Contains(exp, name) {
			extra = append(extra, name)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return assert.Fail(t, fmt.Sprintf("fields of %s and %s differ, missing: %v, extra: %v",
			expType, actType, missing, extra), msgAndArgs...)
	}

	return true
}

func structType(object any) (reflect.Type, bool) {
	if object == nil {
		return nil, false
	}

	typ := reflect.TypeOf(object)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return typ, typ.Kind() == reflect.Struct
}

// fieldNames lists the exported fields of typ, nested fields are prefixed with their parent, e.g. "Owner.Name".
// Fields of embedded structs are promoted, as they are in Go.
func fieldNames(typ reflect.Type, prefix string) []string {
	return collectFieldNames(typ, prefix, map[reflect.Type]bool{})
}

func collectFieldNames(typ reflect.Type, prefix string, visiting map[reflect.Type]bool) []string {
	if visiting[typ] { // recursive types, e.g. a tree node
		return nil
	}

	visiting[typ] = true
	defer delete(visiting, typ)

	names := []string{}

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			names = append(names, collectFieldNames(field.Type, prefix, visiting)...)

			continue
		}

		if !field.IsExported() {
			continue
		}

		name := prefix + field.Name
		names = append(names, name)

		ft := field.Type
		for ft.Kind() == reflect.Ptr || ft.Kind() == reflect.Slice || ft.Kind() == reflect.Array || ft.Kind() == reflect.Map {
			ft = ft.Elem()
		}

		if ft.Kind() == reflect.Struct && ft.PkgPath() != "time" {
			names = append(names, collectFieldNames(ft, name+".", visiting)...)
		}
	}

	return names
}
