package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config") {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := 0; field < a.Value.NumField(); field++ {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fields = append(fields, visit(v1, name+"."+a.Type.Field(field).Name)...)
		}

		return fields
	}

	if a.Value.IsZero() {
		return []string{name}
	}

	return nil
}
