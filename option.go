// File: knob/option.go
package knob

import (
	"fmt"
	"strings"
)

// ArgMode describes whether an option takes an argument.
type ArgMode int

const (
	// ArgNone marks a boolean switch that takes no argument.
	ArgNone ArgMode = iota
	// ArgRequired marks an option whose argument is mandatory.
	ArgRequired
	// ArgOptional marks an option whose argument may be omitted
	// (supplied only in the --name=value form).
	ArgOptional
)

// Option describes one command-line option for LoadArgs. At least one of
// Short and Long must be non-empty; when both are set, the Long name is used
// as the settings key.
type Option struct {
	Short       string
	Long        string
	Description string
	Hint        string // argument placeholder shown in Usage output
	Arg         ArgMode
	Required    bool // the option itself must appear on the command line
}

// Key returns the settings key this option writes to: the long name, or the
// short name when no long name is set.
func (o Option) Key() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// ReqOpt describes an option that must appear and takes a mandatory argument.
func ReqOpt(short, long, description, hint string) Option {
	return Option{Short: short, Long: long, Description: description, Hint: hint, Arg: ArgRequired, Required: true}
}

// OptOpt describes an optional option that takes a mandatory argument.
func OptOpt(short, long, description, hint string) Option {
	return Option{Short: short, Long: long, Description: description, Hint: hint, Arg: ArgRequired}
}

// OptFlag describes a boolean switch without an argument.
func OptFlag(short, long, description string) Option {
	return Option{Short: short, Long: long, Description: description, Arg: ArgNone}
}

// OptFlagOpt describes an option whose argument may be omitted.
func OptFlagOpt(short, long, description, hint string) Option {
	return Option{Short: short, Long: long, Description: description, Hint: hint, Arg: ArgOptional}
}

// Opt appends one option descriptor for later use with LoadArgs. Descriptors
// are not deduplicated; when flags collide, the first registered descriptor
// wins at parse time.
func (s *Settings) Opt(o Option) {
	s.options = append(s.options, o)
}

// Usage formats a human-readable usage string for all registered descriptors,
// prefixed by brief. One line is emitted per descriptor.
func (s *Settings) Usage(brief string) string {
	var b strings.Builder
	b.WriteString(brief)
	b.WriteString("\n\nOptions:\n")

	flags := make([]string, len(s.options))
	width := 0
	for i, o := range s.options {
		flags[i] = formatFlags(o)
		if len(flags[i]) > width {
			width = len(flags[i])
		}
	}

	for i, o := range s.options {
		fmt.Fprintf(&b, "    %-*s  %s\n", width, flags[i], o.Description)
	}

	return b.String()
}

// formatFlags renders the flag column for one descriptor,
// e.g. "-p, --port PORT" or "--verbose".
func formatFlags(o Option) string {
	var parts []string
	if o.Short != "" {
		parts = append(parts, "-"+o.Short)
	}
	if o.Long != "" {
		parts = append(parts, "--"+o.Long)
	}
	flag := strings.Join(parts, ", ")

	switch o.Arg {
	case ArgRequired:
		if o.Hint != "" {
			flag += " " + o.Hint
		}
	case ArgOptional:
		if o.Hint != "" {
			flag += " [" + o.Hint + "]"
		}
	}

	return flag
}

// findOption matches a flag name against the option table, first match wins.
// Short and long names are matched independently so "-port" and "--port" can
// refer to different descriptors if registered that way.
func (s *Settings) findOption(name string, long bool) (Option, bool) {
	if name == "" {
		return Option{}, false
	}
	for _, o := range s.options {
		if long && o.Long == name {
			return o, true
		}
		if !long && o.Short == name {
			return o, true
		}
	}
	return Option{}, false
}
