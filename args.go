// File: knob/args.go
package knob

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel causes carried by ParseError values.
var (
	ErrUnknownOption      = errors.New("unrecognized option")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrUnexpectedArgument = errors.New("option takes no argument")
	ErrOptionRequired     = errors.New("required option not given")
	ErrMalformedFlag      = errors.New("malformed flag")
)

// ParseError describes a single problem found while loading arguments.
type ParseError struct {
	Flag string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("option %q: %v", e.Flag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadOSArgs loads the command-line arguments the process was started with,
// skipping the program name. The program name itself is stored under
// "knob.progname".
func (s *Settings) LoadOSArgs() error {
	s.Set("knob.progname", os.Args[0])
	return s.LoadArgs(os.Args[1:])
}

// LoadArgs parses args against the registered options using conventional
// short/long flag syntax: --name=value, --name value, -s value, -s=value,
// attached -svalue, and bare flags for argument-less options. Matched values
// are written to the store under the option's key.
//
// Parsing does not stop at the first problem: every unknown flag, missing
// argument, and absent required option is collected, and the aggregate is
// returned as a joined error of *ParseError values. Flags that did parse are
// applied to the store regardless, so a partial failure leaves the store
// partially populated rather than rolled back.
//
// A bare "--" terminates option parsing; non-flag tokens are skipped.
func (s *Settings) LoadArgs(args []string) error {
	var errs []error
	matched := make(map[string]bool, len(s.options))

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--":
			i = len(args)

		case strings.HasPrefix(arg, "--"):
			i += s.parseLong(arg, args[i+1:], matched, &errs)

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			i += s.parseShort(arg, args[i+1:], matched, &errs)

		default:
			// Free argument, not ours to interpret.
			i++
		}
	}

	for _, o := range s.options {
		if o.Required && !matched[o.Key()] {
			errs = append(errs, &ParseError{Flag: display(o), Err: ErrOptionRequired})
		}
	}

	return errors.Join(errs...)
}

// parseLong handles one --name token. rest holds the arguments following it.
// Returns how many tokens were consumed.
func (s *Settings) parseLong(arg string, rest []string, matched map[string]bool, errs *[]error) int {
	name, inline, hasInline := strings.Cut(arg[2:], "=")
	if name == "" {
		// Tokens like --=value carry no flag name to match.
		*errs = append(*errs, &ParseError{Flag: arg, Err: ErrMalformedFlag})
		return 1
	}

	o, ok := s.findOption(name, true)
	if !ok {
		*errs = append(*errs, &ParseError{Flag: "--" + name, Err: ErrUnknownOption})
		return 1
	}
	matched[o.Key()] = true

	return s.applyOption(o, "--"+name, inline, hasInline, rest, errs)
}

// parseShort handles one -s token, including -s=value and attached -svalue
// forms. Returns how many tokens were consumed.
func (s *Settings) parseShort(arg string, rest []string, matched map[string]bool, errs *[]error) int {
	name, inline, hasInline := strings.Cut(arg[1:], "=")
	if name == "" {
		*errs = append(*errs, &ParseError{Flag: arg, Err: ErrMalformedFlag})
		return 1
	}

	o, ok := s.findOption(name, false)
	if !ok && !hasInline && len(name) > 1 {
		// Attached value form: -p3000
		if att, found := s.findOption(name[:1], false); found && att.Arg != ArgNone {
			o, ok = att, true
			name, inline, hasInline = name[:1], name[1:], true
		}
	}
	if !ok {
		*errs = append(*errs, &ParseError{Flag: "-" + name, Err: ErrUnknownOption})
		return 1
	}
	matched[o.Key()] = true

	return s.applyOption(o, "-"+name, inline, hasInline, rest, errs)
}

// applyOption writes the matched option's value to the store according to its
// argument mode and reports how many tokens were consumed.
func (s *Settings) applyOption(o Option, flag, inline string, hasInline bool, rest []string, errs *[]error) int {
	switch o.Arg {
	case ArgNone:
		if hasInline {
			*errs = append(*errs, &ParseError{Flag: flag, Err: ErrUnexpectedArgument})
			return 1
		}
		s.Set(o.Key(), "true")
		return 1

	case ArgRequired:
		if hasInline {
			s.Set(o.Key(), inline)
			return 1
		}
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			s.Set(o.Key(), rest[0])
			return 2
		}
		*errs = append(*errs, &ParseError{Flag: flag, Err: ErrMissingArgument})
		return 1

	default: // ArgOptional
		if hasInline {
			s.Set(o.Key(), inline)
		} else {
			s.Set(o.Key(), "true")
		}
		return 1
	}
}

// display renders an option's primary flag for error messages.
func display(o Option) string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + o.Short
}
