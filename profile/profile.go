package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/dumpkit/partial"
)

// Sentinel errors for profile operations.
var (
	// ErrUnknownProfile indicates the requested profile name is not
	// declared in the file.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrUnsupportedFormat indicates the file extension is neither TOML
	// nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported profile file format")
)

// Profile is one named set of dump limits. Zero-value fields fall back to
// the partial package defaults.
type Profile struct {
	MaxTotalLen   int      `toml:"max_total_len" yaml:"max_total_len" json:"max_total_len,omitempty"`
	MaxLen        int      `toml:"max_len" yaml:"max_len" json:"max_len,omitempty"`
	MaxKeys       int      `toml:"max_keys" yaml:"max_keys" json:"max_keys,omitempty"`
	MaxElems      int      `toml:"max_elems" yaml:"max_elems" json:"max_elems,omitempty"`
	PreciousKeys  []string `toml:"precious_keys" yaml:"precious_keys" json:"precious_keys,omitempty"`
	WorthlessKeys []string `toml:"worthless_keys" yaml:"worthless_keys" json:"worthless_keys,omitempty"`
	HideKeys      []string `toml:"hide_keys" yaml:"hide_keys" json:"hide_keys,omitempty"`
	MaskKeysRegex string   `toml:"mask_keys_regex" yaml:"mask_keys_regex" json:"mask_keys_regex,omitempty"`
	MaskToken     string   `toml:"mask_token" yaml:"mask_token" json:"mask_token,omitempty"`
}

// File is a parsed profile file.
type File struct {
	// Default names the profile used when Options is called with "".
	Default string `toml:"default" yaml:"default" json:"default,omitempty"`

	// Profiles maps profile names to their limits.
	Profiles map[string]Profile `toml:"profiles" yaml:"profiles" json:"profiles"`
}

// Load reads a profile file. The format is chosen by extension: .toml, or
// .yaml/.yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseTOML parses profile data in TOML form.
func ParseTOML(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse toml profiles: %w", err)
	}
	return &f, nil
}

// ParseYAML parses profile data in YAML form.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml profiles: %w", err)
	}
	return &f, nil
}

// Names returns the declared profile names, sorted.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options converts the named profile into dump options. An empty name uses
// the file's default profile.
func (f *File) Options(name string) (partial.Options, error) {
	if name == "" {
		name = f.Default
	}
	p, ok := f.Profiles[name]
	if !ok {
		return partial.Options{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	opts, err := p.Options()
	if err != nil {
		return partial.Options{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return opts, nil
}

// Options converts a single profile, compiling the mask pattern.
func (p Profile) Options() (partial.Options, error) {
	opts := partial.Options{
		MaxTotalLen:   p.MaxTotalLen,
		MaxLen:        p.MaxLen,
		MaxKeys:       p.MaxKeys,
		MaxElems:      p.MaxElems,
		PreciousKeys:  p.PreciousKeys,
		WorthlessKeys: p.WorthlessKeys,
		HideKeys:      p.HideKeys,
		MaskToken:     p.MaskToken,
	}
	if p.MaskKeysRegex != "" {
		re, err := regexp.Compile(p.MaskKeysRegex)
		if err != nil {
			return partial.Options{}, fmt.Errorf("compile mask_keys_regex: %w", err)
		}
		opts.MaskKeys = re
	}
	return opts, nil
}
