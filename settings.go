// File: knob/settings.go
package knob

import (
	"fmt"
	"reflect"
	"strconv"
)

// Settings holds serialized values and the option descriptors used when
// loading from command-line arguments. The store and the option table are
// unrelated until LoadArgs runs.
type Settings struct {
	store   map[string]string // Maps keys to raw serialized values
	options []Option          // Ordered descriptors for argument loading
}

// New creates an empty Settings instance.
func New() *Settings {
	return &Settings{
		store: make(map[string]string),
	}
}

// Set stores a value under key. The value is serialized to its display
// string; any previous value for the key is overwritten.
func (s *Settings) Set(key string, value any) {
	s.store[key] = displayString(value)
}

// SetOpt stores a value only if it is present. A nil value, nil pointer, or
// nil interface leaves the store unchanged; a non-nil pointer is dereferenced
// before serialization. This lets callers pipe the result of a fallible prior
// computation into settings without an explicit presence check.
func (s *Settings) SetOpt(key string, value any) {
	if value == nil {
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		value = rv.Elem().Interface()
	}

	s.Set(key, value)
}

// Get retrieves the raw serialized value for a key.
// The second return value indicates whether the key is set.
func (s *Settings) Get(key string) (string, bool) {
	value, ok := s.store[key]
	return value, ok
}

// Keys returns all keys currently present in the store, in no particular order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.store))
	for key := range s.store {
		keys = append(keys, key)
	}
	return keys
}

// Clone returns an independent deep copy of the settings. Mutating the clone
// never affects the original and vice versa.
func (s *Settings) Clone() *Settings {
	dup := &Settings{
		store:   make(map[string]string, len(s.store)),
		options: make([]Option, len(s.options)),
	}
	for key, value := range s.store {
		dup.store[key] = value
	}
	copy(dup.options, s.options)
	return dup
}

// displayString serializes a value for storage.
// Common types are rendered via strconv to keep round-trips exact.
func displayString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())
	default:
		return fmt.Sprintf("%v", value)
	}
}
