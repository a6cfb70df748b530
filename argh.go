package argh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Setting configures an Argh instance at construction time.
type Setting func(*Argh)

// WithDelimiter sets the character used to split multi-value option text.
// The delimiter is fixed per registry instance and shared by every
// multi-value option registered on it. Default is ','.
func WithDelimiter(delim rune) Setting {
	return func(a *Argh) {
		a.delim = delim
	}
}

// WithEnvLookup sets the environment accessor used by ParseEnv. Default is
// os.LookupEnv.
func WithEnvLookup(lookup func(key string) (string, bool)) Setting {
	return func(a *Argh) {
		a.lookupEnv = lookup
	}
}

// Argh is a registry of option descriptors and the engine that fills them.
// It owns its descriptors but holds only non-owning pointers into the host
// variables the descriptors write through; those variables must outlive the
// registry. Argh is not safe for concurrent use.
type Argh struct {
	options   []Option
	delim     rune
	lookupEnv func(string) (string, bool)
	remaining []string
}

// New creates an empty registry with the given settings applied.
func New(settings ...Setting) *Argh {
	a := &Argh{
		delim:     ',',
		lookupEnv: os.LookupEnv,
	}
	for _, s := range settings {
		s(a)
	}
	return a
}

// Opt modifies a single option registration.
type Opt func(*base)

// Required marks the option as expected. Absence after parsing is not
// enforced automatically; hosts check MissingRequired and decide.
func Required() Opt {
	return func(b *base) {
		b.required = true
	}
}

// AddFlag registers a flag: an option with no value payload whose mere
// presence sets the bound bool. The bound variable is set to false
// immediately.
func (a *Argh) AddFlag(dst *bool, name, help string, opts ...Opt) {
	f := &flagOption{
		base: base{name: name, help: help},
		dst:  dst,
	}
	for _, o := range opts {
		o(&f.base)
	}
	*dst = false
	a.options = append(a.options, f)
}

// AddOption registers a scalar option bound to dst. The default value is
// written into dst immediately, so the variable is defined before any
// parsing happens.
func AddOption[T Value](a *Argh, dst *T, def T, name, help string, opts ...Opt) {
	o := &scalarOption[T]{
		base: base{name: name, help: help},
		dst:  dst,
		def:  def,
	}
	for _, fn := range opts {
		fn(&o.base)
	}
	*dst = def
	a.options = append(a.options, o)
}

// AddMultiOption registers a multi-value option bound to dst. The defaults
// text is split on the registry delimiter and coerced element by element
// into dst immediately, replacing any prior contents.
func AddMultiOption[T Value](a *Argh, dst *[]T, defaults, name, help string, opts ...Opt) {
	o := &multiOption[T]{
		base:  base{name: name, help: help},
		dst:   dst,
		def:   defaults,
		delim: a.delim,
	}
	for _, fn := range opts {
		fn(&o.base)
	}
	o.setValue(defaults)
	a.options = append(a.options, o)
}

// Options returns the registered descriptors in registration order.
func (a *Argh) Options() []Option {
	return a.options
}

// Parse scans the token sequence against every registered option name.
// A matched name is marked seen and, if a following token exists, that
// token is handed to the option's setter (a no-op for flags). Duplicate
// registrations of one name are all updated. Tokens that neither match a
// name nor serve as a matched option's value are collected as the
// remainder, replacing the remainder of any earlier call. Value tokens are
// still scanned as candidate names at their own position.
func (a *Argh) Parse(args []string) {
	consumed := make([]bool, len(args))

	for i, tok := range args {
		for _, o := range a.options {
			if tok != o.Name() {
				continue
			}
			o.markSeen()
			consumed[i] = true
			if i+1 < len(args) {
				o.setValue(args[i+1])
				if o.takesValue() {
					consumed[i+1] = true
				}
			}
		}
	}

	a.remaining = a.remaining[:0]
	for i, tok := range args {
		if !consumed[i] {
			a.remaining = append(a.remaining, tok)
		}
	}
}

// ParseEnv checks the environment for every registered option, keyed by the
// option's exact name (including leading marker characters). A present
// variable marks the option seen and applies its value through the same
// setter Parse uses.
func (a *Argh) ParseEnv() {
	for _, o := range a.options {
		if val, ok := a.lookupEnv(o.Name()); ok {
			o.markSeen()
			o.setValue(val)
		}
	}
}

// Load reads an option file and parses it. The format is one token per
// line: a name line immediately followed by a value line binds that value,
// exactly as if both lines were consecutive argument-vector entries. No
// whitespace splitting, quoting, or comments.
//
// A file that cannot be opened returns an error (ErrConfigNotFound when it
// does not exist) and leaves all option state untouched. An empty file is a
// successful no-op.
func (a *Argh) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to open option file '%s': %w", path, err)
	}
	defer f.Close()

	return a.LoadReader(f)
}

// LoadReader parses line-per-token option data from r.
func (a *Argh) LoadReader(r io.Reader) error {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read option data: %w", err)
	}

	a.Parse(tokens)
	return nil
}

// IsParsed reports whether any registered option with the given name has
// been seen during a Parse, ParseEnv, Load, or LoadValues call.
func (a *Argh) IsParsed(name string) bool {
	for _, o := range a.options {
		if o.Name() == name && o.Seen() {
			return true
		}
	}
	return false
}

// MissingRequired returns the names of required options that were never
// seen, in registration order.
func (a *Argh) MissingRequired() []string {
	var missing []string
	for _, o := range a.options {
		if o.Required() && !o.Seen() {
			missing = append(missing, o.Name())
		}
	}
	return missing
}

// RemainingArgs returns the tokens from the most recent parse pass that
// matched no option name and were not consumed as a value. Load feeds its
// lines through Parse, so the remainder always reflects the latest pass,
// whichever source it came from.
func (a *Argh) RemainingArgs() []string {
	return a.remaining
}
