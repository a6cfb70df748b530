// Package argh provides declarative command-line option parsing with
// lightweight option-file support. Hosts register typed bindings ahead of
// time and the registry fills them from defaults, option files, environment
// variables, and the argument vector, in that override order.
//
// Features:
//   - Flags, scalar options, and delimiter-split multi-value options bound
//     directly to host-owned variables
//   - Defaults applied at registration time, before any parsing
//   - Line-per-token option files sharing the command-line token syntax
//   - Structured option files (TOML, JSON, YAML) with format auto-detection
//   - Environment variable lookup keyed by option name
//   - Per-option "seen" tracking and required-option reporting
//   - Column-aligned usage text
//
// Quick Start:
//
//	var port int
//	var verbose bool
//	var tags []string
//
//	a := argh.New()
//	a.AddFlag(&verbose, "--verbose", "Print more")
//	argh.AddOption(a, &port, 8080, "--port", "Listen port")
//	argh.AddMultiOption(a, &tags, "dev,test", "--tags", "Deployment tags")
//
//	a.Load("app.opts") // optional; a missing file is reported, not fatal
//	a.Parse(os.Args[1:])
//
//	if a.IsParsed("--verbose") { ... }
//
// Value Conversion:
// Values are plain text tokens. Strings are taken verbatim. Integers and
// floats use standard strconv parsing; a token that fails to convert leaves
// the bound variable untouched, silently. Booleans follow the numeric
// convention: only "1" and "0" are accepted. "true" and "false" are NOT
// recognized and leave the prior value in place.
//
// Ownership:
// The registry holds bare pointers into host-owned storage and writes
// through them at registration and match time. The bound variables must
// outlive the registry. A registry is not safe for concurrent use; callers
// that share one across goroutines must serialize access themselves.
package argh
