package restrict

import "math"

// Options controls a restriction scan.
type Options struct {
	// Circular treats the sequence as a circular molecule.
	Circular bool

	// AmbiguityAllowed admits enzymes whose site has ambiguity codes.
	AmbiguityAllowed bool

	// MinCuts and MaxCuts bound the number of sites an enzyme must have
	// for its hits to be reported.
	MinCuts int
	MaxCuts int

	// AllowBlunt and AllowSticky select enzymes by the ends they leave.
	AllowBlunt  bool
	AllowSticky bool

	// AllIsoschizomers reports every enzyme separately instead of folding
	// isoschizomers into the alphabetically first one.
	AllIsoschizomers bool

	// SortByName orders hits by enzyme name, then position. The default
	// order is position, then enzyme name.
	SortByName bool

	// Begin is added to every reported coordinate.
	Begin int

	// Concurrency limits the enzymes scanned in parallel. Zero means one
	// goroutine per CPU.
	Concurrency int

	// Prefilter finds candidate site starts for all unambiguous sites in
	// one pass before verifying each enzyme.
	Prefilter bool
}

// DefaultOptions returns options that report every enzyme with at least one
// site on a linear sequence.
func DefaultOptions() Options {
	return Options{
		AmbiguityAllowed: true,
		MinCuts:          1,
		MaxCuts:          math.MaxInt32,
		AllowBlunt:       true,
		AllowSticky:      true,
		Prefilter:        true,
	}
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	switch {
	case o.MinCuts < 1:
		return &OptionError{Field: "MinCuts", Message: "must be at least 1"}
	case o.MaxCuts < o.MinCuts:
		return &OptionError{Field: "MaxCuts", Message: "must not be below MinCuts"}
	case !o.AllowBlunt && !o.AllowSticky:
		return &OptionError{Field: "AllowBlunt", Message: "at least one of blunt or sticky ends must be allowed"}
	case o.Concurrency < 0:
		return &OptionError{Field: "Concurrency", Message: "must not be negative"}
	}
	return nil
}

// OptionError represents an invalid scan option.
type OptionError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return "restrict: invalid options: " + e.Field + ": " + e.Message
}
