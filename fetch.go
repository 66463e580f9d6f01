// File: knob/fetch.go
package knob

import (
	"encoding"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// ErrKeyMissing indicates a fetch against a key that was never set.
var ErrKeyMissing = errors.New("key not set")

// FetchError describes a failed typed lookup. Err is ErrKeyMissing when the
// key is absent, or the underlying parse error when the stored value could
// not be converted to the requested type. Raw carries the offending value in
// the parse case and is empty otherwise.
type FetchError struct {
	Key string
	Raw string
	Err error
}

func (e *FetchError) Error() string {
	if errors.Is(e.Err, ErrKeyMissing) {
		return fmt.Sprintf("setting %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("setting %q: cannot parse %q: %v", e.Key, e.Raw, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch retrieves the value stored under key parsed as T. It fails with a
// *FetchError wrapping ErrKeyMissing if the key is absent, or wrapping the
// parse error if the stored string cannot be converted. T may be any of the
// strconv kinds, time.Duration, time.Time (RFC3339), net.IP, netip.Addr,
// netip.AddrPort, url.URL (value or pointer), or any type implementing
// encoding.TextUnmarshaler.
func Fetch[T any](s *Settings, key string) (T, error) {
	var value T

	raw, ok := s.Get(key)
	if !ok {
		return value, &FetchError{Key: key, Err: ErrKeyMissing}
	}

	if err := parseInto(&value, raw); err != nil {
		return value, &FetchError{Key: key, Raw: raw, Err: err}
	}

	return value, nil
}

// FetchWith retrieves the value stored under key parsed as T and passes it to
// f, returning f's result. It fails exactly as Fetch does when the key is
// missing or unparsable, and never invokes f in that case.
func FetchWith[T, R any](s *Settings, key string, f func(T) R) (R, error) {
	value, err := Fetch[T](s, key)
	if err != nil {
		var zero R
		return zero, err
	}
	return f(value), nil
}

// parseInto converts a raw stored string into the pointed-to target type.
// The supported set matches the decode hooks used by Bind, so both retrieval
// paths understand the same string forms.
func parseInto(target any, raw string) error {
	switch t := target.(type) {
	case *string:
		*t = raw
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*t = v
	case *int:
		v, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return err
		}
		*t = int(v)
	case *int8:
		v, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return err
		}
		*t = int8(v)
	case *int16:
		v, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return err
		}
		*t = int16(v)
	case *int32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return err
		}
		*t = int32(v)
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		*t = v
	case *uint:
		v, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return err
		}
		*t = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return err
		}
		*t = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return err
		}
		*t = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return err
		}
		*t = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		*t = v
	case *float32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		*t = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*t = v
	case *time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*t = v
	case *time.Time:
		v, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return err
		}
		*t = v
	case *net.IP:
		v := net.ParseIP(raw)
		if v == nil {
			return fmt.Errorf("invalid IP address %q", raw)
		}
		*t = v
	case *url.URL:
		v, err := url.Parse(raw)
		if err != nil {
			return err
		}
		*t = *v
	case **url.URL:
		v, err := url.Parse(raw)
		if err != nil {
			return err
		}
		*t = v
	default:
		if tu, ok := target.(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(raw))
		}
		return fmt.Errorf("type %T does not support parsing from string", target)
	}

	return nil
}
