// File: knob/encode.go
package knob

import (
	"fmt"
	"io"
	"net"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// Bind decodes the settings store into the target struct or map using weakly
// typed conversion, so stored strings populate int, bool, float, duration,
// slice, and net.IP fields directly. Field names are matched via the "knob"
// struct tag. The target must be a non-nil pointer.
func (s *Settings) Bind(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("bind target must be a non-nil pointer, got %T", target)
	}

	data := make(map[string]any, len(s.store))
	for key, value := range s.store {
		data[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "knob",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToNetIPHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to bind settings into %T: %w", target, err)
	}

	return nil
}

// EncodeTOML writes the current store as TOML to w. Keys containing dots are
// quoted by the encoder, so the output is always valid TOML.
func (s *Settings) EncodeTOML(w io.Writer) error {
	data := make(map[string]string, len(s.store))
	for key, value := range s.store {
		data[key] = value
	}

	if err := toml.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode settings to TOML: %w", err)
	}

	return nil
}

// stringToNetIPHookFunc handles net.IP conversion during Bind.
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		raw := data.(string)
		ip := net.ParseIP(raw)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address %q", raw)
		}
		return ip, nil
	}
}
