package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlavl/avl"
	"github.com/katalvlaran/lvlavl/order"
)

// Encode writes t to w as an Envelope in format f.
//
// Returns ErrUnknownFormat, ErrUnknownLayout, ErrOptionViolation, or the
// encoder's error wrapped.
//
// Complexity: O(n).
func Encode[E any, K any](w io.Writer, t *avl.Tree[E, K], f Format, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	env := Envelope[E]{
		Version:         Version,
		Layout:          o.Layout,
		ImbalanceFactor: t.ImbalanceFactor(),
	}
	if o.Layout == PreOrder {
		env.Elements = slices.Collect(t.PreOrder())
	} else {
		env.Elements = t.Export()
	}
	if env.Elements == nil {
		env.Elements = []E{}
	}

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		if o.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", o.Indent))
		}
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("codec: encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		if o.Indent > 0 {
			enc.SetIndent(o.Indent)
		}
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("codec: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("codec: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	return nil
}

// Decode reads an Envelope in format f from r and rebuilds the tree under
// ord. The envelope's imbalance factor is applied first, so treeOpts may
// override it; an inorder envelope is bulk-built with avl.FromSorted, a
// preorder one keeps its exact shape through avl.FromPreOrder.
//
// Returns ErrUnknownFormat, ErrUnsupportedVersion, ErrUnknownLayout, the
// decoder's error wrapped, or the avl construction error (for example
// avl.ErrNotSorted when the elements are out of order under ord).
func Decode[E any, K any](r io.Reader, ord *order.Ordering[E, K], f Format, treeOpts ...avl.Option) (*avl.Tree[E, K], error) {
	var env Envelope[E]
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&env); err != nil {
			return nil, fmt.Errorf("codec: decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&env); err != nil {
			return nil, fmt.Errorf("codec: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	if env.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	opts := append([]avl.Option{avl.WithImbalanceFactor(env.ImbalanceFactor)}, treeOpts...)

	switch env.Layout {
	case InOrder:
		return avl.FromSorted(ord, env.Elements, opts...)
	case PreOrder:
		return avl.FromPreOrder(ord, env.Elements, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, string(env.Layout))
	}
}

// Marshal is Encode into a byte slice.
func Marshal[E any, K any](t *avl.Tree[E, K], f Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, f, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal[E any, K any](data []byte, ord *order.Ordering[E, K], f Format, treeOpts ...avl.Option) (*avl.Tree[E, K], error) {
	return Decode(bytes.NewReader(data), ord, f, treeOpts...)
}
