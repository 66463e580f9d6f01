// File: knob/encode_test.go
package knob

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBind tests decoding the store into a struct
func TestBind(t *testing.T) {
	t.Run("WeaklyTypedFields", func(t *testing.T) {
		s := New()
		s.Set("host", "example.com")
		s.Set("port", 9000)
		s.Set("debug", true)
		s.Set("timeout", "30s")
		s.Set("tags", "primary,replica")
		s.Set("ip", "10.0.0.1")

		var target struct {
			Host    string        `knob:"host"`
			Port    int           `knob:"port"`
			Debug   bool          `knob:"debug"`
			Timeout time.Duration `knob:"timeout"`
			Tags    []string      `knob:"tags"`
			IP      net.IP        `knob:"ip"`
		}

		err := s.Bind(&target)
		require.NoError(t, err)

		assert.Equal(t, "example.com", target.Host)
		assert.Equal(t, 9000, target.Port)
		assert.True(t, target.Debug)
		assert.Equal(t, 30*time.Second, target.Timeout)
		assert.Equal(t, []string{"primary", "replica"}, target.Tags)
		assert.Equal(t, "10.0.0.1", target.IP.String())
	})

	t.Run("UnsetFieldsKeepZeroValues", func(t *testing.T) {
		s := New()
		s.Set("host", "example.com")

		var target struct {
			Host string `knob:"host"`
			Port int    `knob:"port"`
		}

		err := s.Bind(&target)
		require.NoError(t, err)
		assert.Equal(t, "example.com", target.Host)
		assert.Zero(t, target.Port)
	})

	t.Run("RejectsNonPointerTarget", func(t *testing.T) {
		s := New()

		var target struct{}
		err := s.Bind(target)
		assert.Error(t, err)
	})

	t.Run("ReportsUnparsableField", func(t *testing.T) {
		s := New()
		s.Set("port", "not-a-number")

		var target struct {
			Port int `knob:"port"`
		}

		err := s.Bind(&target)
		assert.Error(t, err)
	})
}

// TestEncodeTOML tests the TOML export surface
func TestEncodeTOML(t *testing.T) {
	t.Run("FlatKeys", func(t *testing.T) {
		s := New()
		s.Set("host", "example.com")
		s.Set("port", 9000)

		var buf bytes.Buffer
		err := s.EncodeTOML(&buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `host = "example.com"`)
		assert.Contains(t, out, `port = "9000"`)
	})

	t.Run("DottedKeysAreQuoted", func(t *testing.T) {
		s := New()
		s.Set("knob.progname", "myprog")

		var buf bytes.Buffer
		err := s.EncodeTOML(&buf)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"knob.progname" = "myprog"`)
	})
}
