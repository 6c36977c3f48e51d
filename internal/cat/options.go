package cat

// Options is the set of display flags as given on a command line,
// including the composite flags that imply others.
type Options struct {
	ShowAll             bool // -A: equivalent to -vET
	ShowNonprintingEnds bool // -e: equivalent to -vE
	ShowNonprintingTabs bool // -t: equivalent to -vT

	ShowEnds        bool
	ShowTabs        bool
	ShowNonprinting bool

	Number         bool
	NumberNonblank bool
	SqueezeBlank   bool
}

// Config is a flattened, read-only set of display rules.
// Composite flags have already been expanded, and NumberNonblank
// has already overridden NumberAll.
type Config struct {
	ShowEnds        bool
	ShowTabs        bool
	ShowNonprinting bool

	NumberAll      bool
	NumberNonblank bool
	SqueezeBlank   bool
}

// Config resolves the composite flags of o into a Config.
func (o Options) Config() Config {
	return Config{
		ShowEnds:        o.ShowEnds || o.ShowAll || o.ShowNonprintingEnds,
		ShowTabs:        o.ShowTabs || o.ShowAll || o.ShowNonprintingTabs,
		ShowNonprinting: o.ShowNonprinting || o.ShowAll || o.ShowNonprintingEnds || o.ShowNonprintingTabs,

		NumberAll:      o.Number && !o.NumberNonblank,
		NumberNonblank: o.NumberNonblank,
		SqueezeBlank:   o.SqueezeBlank,
	}
}

// IsZero reports whether c leaves every byte untouched,
// in which case a plain copy is sufficient.
func (c Config) IsZero() bool {
	return c == Config{}
}
