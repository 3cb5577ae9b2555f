package partial

import (
	"regexp"

	"github.com/randalmurphal/dumpkit/dump"
)

// Default limits applied when an Options field is left at zero.
const (
	// DefaultMaxTotalLen is the hard cap on final output length.
	DefaultMaxTotalLen = 80

	// DefaultMaxLen is the per-string clip threshold.
	DefaultMaxLen = 32

	// DefaultMaxKeys is the per-mapping key-count threshold.
	DefaultMaxKeys = 5

	// DefaultMaxElems is the per-sequence element-count threshold.
	DefaultMaxElems = 5

	// DefaultMaskToken replaces values of keys matched by MaskKeys.
	DefaultMaskToken = "***"
)

// NoLimit disables an individual limit. A zero limit means "use the
// default", so disabling has to be explicit.
const NoLimit = -1

// Pair is one mapping entry as seen by a PairFilter.
type Pair struct {
	Key   string
	Value any
}

// PairFilter rewrites one mapping entry into zero or more replacement
// entries. Returning the input pair unchanged leaves the mapping untouched;
// returning nil drops the entry.
type PairFilter func(key string, value any) []Pair

// Options configures one dump invocation. The zero value uses all defaults.
type Options struct {
	// MaxTotalLen caps the length of the final one-line output.
	MaxTotalLen int

	// MaxLen clips individual strings longer than this many runes.
	MaxLen int

	// MaxKeys truncates mappings with more keys than this. It is raised
	// silently when PreciousKeys is longer, so protected keys always fit.
	MaxKeys int

	// MaxElems truncates sequences with more elements than this.
	MaxElems int

	// PreciousKeys are never dropped by key selection, unless also listed
	// in HideKeys (hidden wins over precious).
	PreciousKeys []string

	// WorthlessKeys are dropped first when a mapping is over budget.
	WorthlessKeys []string

	// HideKeys are always dropped, even when also precious.
	HideKeys []string

	// MaskKeys matches keys whose values are replaced with MaskToken.
	MaskKeys *regexp.Regexp

	// MaskToken is the replacement for masked values. Defaults to "***".
	MaskToken string

	// PairFilter rewrites mapping entries before size decisions are made.
	PairFilter PairFilter

	// Filter is a generic per-node override hook, consulted only when no
	// truncation rule applied to the node. Lowest priority.
	Filter dump.Filter
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		MaxTotalLen: DefaultMaxTotalLen,
		MaxLen:      DefaultMaxLen,
		MaxKeys:     DefaultMaxKeys,
		MaxElems:    DefaultMaxElems,
		MaskToken:   DefaultMaskToken,
	}
}

// normalized fills zero-value fields with defaults and raises MaxKeys to
// accommodate all precious keys. NoLimit fields pass through untouched.
func (o Options) normalized() Options {
	if o.MaxTotalLen == 0 {
		o.MaxTotalLen = DefaultMaxTotalLen
	}
	if o.MaxLen == 0 {
		o.MaxLen = DefaultMaxLen
	}
	if o.MaxKeys == 0 {
		o.MaxKeys = DefaultMaxKeys
	}
	if o.MaxElems == 0 {
		o.MaxElems = DefaultMaxElems
	}
	if o.MaskToken == "" {
		o.MaskToken = DefaultMaskToken
	}
	if o.MaxKeys != NoLimit && len(o.PreciousKeys) > o.MaxKeys {
		o.MaxKeys = len(o.PreciousKeys)
	}
	return o
}

// keySet builds a membership set from a key list.
func keySet(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
