package view

import (
	"fmt"
	"iter"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// cursor walks an array's elements in order, carrying the running byte offset
// so a full pass over a STRING or VALUE array reads each length once.
type cursor struct {
	arr   Array
	index int
	pos   int // offset of the next element body
	size  int // offset of the next size-table entry, VALUE arrays only
	body  int // size of the element last returned by next, VALUE arrays only
}

func newCursor(a Array) cursor {
	c := cursor{arr: a, pos: a.PayloadStart()}
	if a.elem == format.ElementValue {
		c.size = c.pos
		c.pos += a.count * lengthPrefixSize
	}

	return c
}

func (c *cursor) done() bool {
	return c.index >= c.arr.count
}

// offset returns the position of the current element without advancing.
func (c *cursor) offset() int {
	if c.arr.elem == format.ElementBoolean {
		return c.arr.PayloadStart() + c.index/8
	}

	return c.pos
}

// next returns the offset of the current element and advances past it.
// The caller must check done first.
func (c *cursor) next() (int, error) {
	var off int

	switch c.arr.elem {
	case format.ElementBoolean:
		off = c.offset()
	case format.ElementInteger, format.ElementFloat, format.ElementLong, format.ElementDouble:
		off = c.pos
		c.pos += c.arr.elem.SlotWidth()
	case format.ElementString:
		n, err := readLength(c.arr.buf, c.pos)
		if err != nil {
			return 0, err
		}
		off = c.pos
		c.pos += lengthPrefixSize + n
	case format.ElementValue:
		n, err := readLength(c.arr.buf, c.size)
		if err != nil {
			return 0, err
		}
		off = c.pos
		c.body = n
		c.size += lengthPrefixSize
		c.pos += n
	}
	c.index++

	return off, nil
}

// nextValue returns a reader for the current element and advances past it.
func (c *cursor) nextValue() (Value, error) {
	index := c.index

	off, err := c.next()
	if err != nil {
		return Value{}, err
	}

	return c.arr.elementAt(off, index, c.body)
}

// nextTyped returns the current element stamped with kind and advances past it.
func (c *cursor) nextTyped(kind format.ValueType) (Value, error) {
	bit := uint8(c.index % 8) //nolint:gosec

	off, err := c.next()
	if err != nil {
		return Value{}, err
	}
	if c.arr.elem != format.ElementBoolean {
		bit = 0
	}

	return typedValue(c.arr.buf, off, kind, bit), nil
}

// Iterator is a single-pass, forward-only sequence over an array's elements.
//
// An Iterator cannot be restarted; call Array.Iterator again for a new
// independent pass. It is not safe for concurrent use.
type Iterator struct {
	cur   cursor
	typed bool
	kind  format.ValueType // stamped on every element when typed
	err   error
}

// Iterator returns a new Iterator positioned at element 0.
//
// Elements of primitive arrays are stamped with the array's scalar kind and
// elements of VALUE arrays read their own tag, matching Get.
func (a Array) Iterator() *Iterator {
	return &Iterator{cur: newCursor(a)}
}

// TypedIterator returns an Iterator over a primitive array. The scalar kind is
// resolved once here and stamped on every element, so Next never inspects the
// element type. The values equal those of Iterator.
//
// Returns errs.ErrTypeMismatch for VALUE arrays, whose elements have no shared kind.
func (a Array) TypedIterator() (*Iterator, error) {
	kind, ok := a.elem.ScalarKind()
	if !ok {
		return nil, fmt.Errorf("%w: typed iteration over %s array", errs.ErrTypeMismatch, a.elem)
	}

	return &Iterator{cur: newCursor(a), typed: true, kind: kind}, nil
}

// HasNext reports whether Next will return another element.
func (it *Iterator) HasNext() bool {
	return it.err == nil && !it.cur.done()
}

// Next returns the next element.
//
// Returns errs.ErrIteratorExhausted once all elements have been produced. A
// decode failure is returned and then repeated by every later call.
func (it *Iterator) Next() (Value, error) {
	if it.err != nil {
		return Value{}, it.err
	}
	if it.cur.done() {
		return Value{}, fmt.Errorf("%w: all %d elements consumed", errs.ErrIteratorExhausted, it.cur.arr.count)
	}

	var (
		v   Value
		err error
	)
	if it.typed {
		v, err = it.cur.nextTyped(it.kind)
	} else {
		v, err = it.cur.nextValue()
	}
	if err != nil {
		it.err = err
		return Value{}, err
	}

	return v, nil
}

// Index returns the index of the element the next call to Next produces.
func (it *Iterator) Index() int {
	return it.cur.index
}

// Offset returns the byte offset of the element the next call to Next reads.
func (it *Iterator) Offset() int {
	return it.cur.offset()
}

// Typed reports whether the iterator was created by TypedIterator.
func (it *Iterator) Typed() bool {
	return it.typed
}

// All returns an iterator over all elements in order.
//
// Each call starts a fresh pass. On a decode failure it yields the zero Value
// with the error once and stops.
//
// Example:
//
//	for v, err := range arr.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v.Kind())
//	}
func (a Array) All() iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		it := a.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Offsets returns an iterator over the byte offset of every element, as visited
// by a single forward pass. The offsets equal ElementOffset(i) for each i.
func (a Array) Offsets() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		c := newCursor(a)
		for !c.done() {
			off, err := c.next()
			if !yield(off, err) || err != nil {
				return
			}
		}
	}
}
