package argh

// Value enumerates the types an option can bind to.
type Value interface {
	bool | int | int64 | float64 | string
}

// Option describes one registered binding point. The concrete shapes are a
// closed set: flag, scalar, and multi-value. Descriptors are owned by the
// registry that created them; the storage they write through is owned by
// the host.
type Option interface {
	// Name returns the literal token that identifies the option, including
	// any leading marker characters (e.g. "--intvalue").
	Name() string

	// Default returns the display form of the default value as rendered in
	// usage text. Flags render empty; text defaults are wrapped in quotes.
	Default() string

	// Help returns the free-text description.
	Help() string

	// Required reports whether the host expects this option to be seen.
	Required() bool

	// Seen reports whether the option's name has matched a token during any
	// parse, load, or environment pass. Sticky: it never resets.
	Seen() bool

	markSeen()
	setValue(text string)
	takesValue() bool
	current() any
}

// base carries the fields every option shape shares.
type base struct {
	name     string
	help     string
	required bool
	seen     bool
}

func (b *base) Name() string { return b.name }
func (b *base) Help() string { return b.help }
func (b *base) Required() bool { return b.required }
func (b *base) Seen() bool { return b.seen }
func (b *base) markSeen() { b.seen = true }

// flagOption has no payload. Its presence sets the bound bool.
type flagOption struct {
	base
	dst *bool
}

func (f *flagOption) Default() string { return "" }
func (f *flagOption) setValue(string) {}
func (f *flagOption) takesValue() bool { return false }
func (f *flagOption) markSeen() { f.seen = true; *f.dst = true }
func (f *flagOption) current() any { return *f.dst }

// scalarOption binds one value of type T to host storage.
type scalarOption[T Value] struct {
	base
	dst *T
	def T
}

func (o *scalarOption[T]) Default() string { return displayScalar(o.def) }
func (o *scalarOption[T]) setValue(s string) { coerce(s, o.dst) }
func (o *scalarOption[T]) takesValue() bool { return true }
func (o *scalarOption[T]) current() any { return *o.dst }

// multiOption binds an ordered sequence of T, populated by splitting one
// delimiter-joined text blob. Every setValue replaces the sequence
// wholesale; it never appends.
type multiOption[T Value] struct {
	base
	dst   *[]T
	def   string
	delim rune
}

func (o *multiOption[T]) Default() string { return `"` + o.def + `"` }
func (o *multiOption[T]) takesValue() bool { return true }
func (o *multiOption[T]) current() any { return *o.dst }

func (o *multiOption[T]) setValue(s string) {
	segments := splitSegments(s, o.delim)
	out := make([]T, 0, len(segments))
	for _, seg := range segments {
		var elem T
		coerce(seg, &elem)
		out = append(out, elem)
	}
	*o.dst = out
}
