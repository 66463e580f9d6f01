// File: knob/doc.go

// Package knob provides a small typed settings container for Go applications:
// a string-to-string store with typed retrieval via parsing, plus optional
// population from command-line arguments through a declarative option table.
//
// It is meant for items that are rarely read and stored, like command line
// flags or application configuration. All values are serialized to strings on
// Set and parsed back to the requested type on Fetch, which allows sideloading
// of settings through multiple means. knob is not meant for structured data;
// if you need to load such data, store its location as a knob setting and do
// the loading yourself.
//
// Features:
//   - Flat string store, last Set wins, typed interpretation deferred to Fetch
//   - Generic Fetch/FetchWith constrained to types parseable from a string
//     (strconv kinds, time.Duration, net/netip addresses, URLs, RFC3339 times,
//     and anything implementing encoding.TextUnmarshaler)
//   - Declarative option table with getopts-style constructors
//     (ReqOpt, OptOpt, OptFlag, OptFlagOpt)
//   - LoadArgs collects every argument problem in one pass instead of
//     stopping at the first; successfully parsed flags are still applied
//   - Struct binding via mapstructure and TOML export for interop
//
// Quick Start:
//
//	settings := knob.New()
//	settings.Opt(knob.OptOpt("p", "port", "the port to bind to", "PORT"))
//	settings.Opt(knob.OptOpt("e", "environment", "the environment to run in", "ENV"))
//	if err := settings.LoadOSArgs(); err != nil {
//	    fmt.Println(settings.Usage("Try one of these:"))
//	    os.Exit(2)
//	}
//
//	port, err := knob.Fetch[int](settings, "port")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Error Handling:
// knob never panics on malformed input. Fetch failures are *FetchError values
// wrapping either ErrKeyMissing or the underlying parse error; LoadArgs
// returns an errors.Join aggregate of *ParseError values, one per problem.
//
// Ownership:
// A Settings value belongs to a single logical owner; it is not safe for
// concurrent use. Clone produces an independent deep copy when another owner
// needs one.
//
// knob goes up to 11.
package knob
