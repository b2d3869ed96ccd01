package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/bbdata/document"
	"github.com/arloliu/bbdata/format"
	"github.com/arloliu/bbdata/view"
)

// printer writes an indented value tree.
type printer struct {
	w        io.Writer
	maxItems int
}

func (p *printer) document(doc document.Document) error {
	root, err := doc.Root()
	if err != nil {
		return err
	}

	return p.value("root", root, 0)
}

func (p *printer) line(depth int, msg string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(msg, args...))
}

// limit returns how many of n items to print.
func (p *printer) limit(n int) int {
	if p.maxItems > 0 && n > p.maxItems {
		return p.maxItems
	}

	return n
}

func (p *printer) value(label string, v view.Value, depth int) error {
	switch v.Kind() {
	case format.TypeNull:
		p.line(depth, "%s: null", label)
	case format.TypeBoolean:
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		p.line(depth, "%s: %t", label, b)
	case format.TypeInteger, format.TypeLong:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		p.line(depth, "%s: %d (%s)", label, n, v.Kind())
	case format.TypeFloat, format.TypeDouble:
		f, err := v.AsFloat64()
		if err != nil {
			return err
		}
		p.line(depth, "%s: %g (%s)", label, f, v.Kind())
	case format.TypeString:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		p.line(depth, "%s: %q", label, s)
	case format.TypeBytes:
		b, err := v.AsBytes()
		if err != nil {
			return err
		}
		p.line(depth, "%s: bytes[%d] %x", label, len(b), b[:p.limit(len(b))])
	case format.TypeArray:
		arr, err := v.AsArray()
		if err != nil {
			return err
		}

		return p.array(label, arr, depth)
	case format.TypeValueMap:
		m, err := v.AsValueMap()
		if err != nil {
			return err
		}

		return p.valueMap(label, m, depth)
	}

	return nil
}

func (p *printer) array(label string, arr view.Array, depth int) error {
	p.line(depth, "%s: Array<%s>[%d] @%d", label, arr.ElementType(), arr.Len(), arr.Offset())

	shown := p.limit(arr.Len())
	i := 0
	for v, err := range arr.All() {
		if i == shown {
			break
		}
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", label, i, err)
		}
		if err := p.value(fmt.Sprintf("[%d]", i), v, depth+1); err != nil {
			return err
		}
		i++
	}
	if rest := arr.Len() - shown; rest > 0 {
		p.line(depth+1, "... %d more", rest)
	}

	return nil
}

func (p *printer) valueMap(label string, m view.ValueMap, depth int) error {
	p.line(depth, "%s: ValueMap[%d]", label, m.Len())

	shown := p.limit(m.Len())
	i := 0
	for e, err := range m.Entries() {
		if i == shown {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if err := p.value(e.Key, e.Value, depth+1); err != nil {
			return err
		}
		i++
	}
	if rest := m.Len() - shown; rest > 0 {
		p.line(depth+1, "... %d more", rest)
	}

	return nil
}
