package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice returns the key.Binding fields of the struct t in the order
// they are declared. Fields of any other type are skipped.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	v := reflect.ValueOf(t)
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		if kb, ok := v.Field(i).Interface().(key.Binding); ok {
			bindings = append(bindings, kb)
		}
	}
	return
}
