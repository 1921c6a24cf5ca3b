package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Version is the envelope version written by Encode and accepted by Decode.
const Version = 1

// Sentinel errors for codec.
var (
	// ErrUnknownFormat indicates a Format value or name codec does not know.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrUnsupportedVersion indicates an envelope written by another version.
	ErrUnsupportedVersion = errors.New("codec: unsupported envelope version")

	// ErrUnknownLayout indicates an envelope layout other than inorder/preorder.
	ErrUnknownLayout = errors.New("codec: unknown layout")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("codec: invalid option value")
)

// Format selects the wire encoding.
type Format int

const (
	// JSON encodes with encoding/json.
	JSON Format = iota
	// YAML encodes with gopkg.in/yaml.v3.
	YAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Layout selects how elements are listed in the envelope.
type Layout string

const (
	// InOrder lists elements in ascending key order; decoding rebuilds a
	// minimum-height tree.
	InOrder Layout = "inorder"
	// PreOrder lists elements root first; decoding rebuilds the exact shape.
	PreOrder Layout = "preorder"
)

func (l Layout) valid() bool { return l == InOrder || l == PreOrder }

// Envelope is the serialized form of a tree.
type Envelope[E any] struct {
	Version         int    `json:"version" yaml:"version"`
	Layout          Layout `json:"layout" yaml:"layout"`
	ImbalanceFactor int    `json:"imbalance_factor,omitempty" yaml:"imbalance_factor,omitempty"`
	Elements        []E    `json:"elements" yaml:"elements"`
}

// Options configure Encode.
type Options struct {
	// Layout of the element list; InOrder by default.
	Layout Layout
	// Indent is the number of spaces per nesting level; 0 writes compact
	// JSON and yaml.v3's default indentation.
	Indent int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the Encode defaults.
func DefaultOptions() Options {
	return Options{Layout: InOrder}
}

// WithLayout selects the element layout.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		if !l.valid() {
			o.err = fmt.Errorf("%w: %q", ErrUnknownLayout, string(l))
			return
		}
		o.Layout = l
	}
}

// WithIndent pretty-prints with n spaces per level.
func WithIndent(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: indent %d", ErrOptionViolation, n)
			return
		}
		o.Indent = n
	}
}
