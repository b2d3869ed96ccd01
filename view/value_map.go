package view

import (
	"fmt"
	"iter"

	"github.com/arloliu/bbdata/errs"
)

// ValueMap is a read-only view over an encoded string-keyed map.
//
// Layout after the value tag:
//
//	[4 bytes: entry count N]
//	N * ([4-byte key length][key bytes][4-byte body length][tagged value body])
//
// Each body is confined to its declared length.
//
// The format carries no hash index, so lookups scan the entries in order.
type ValueMap struct {
	buf   []byte
	base  int
	count int
}

// MapEntry is one key/value pair of a ValueMap.
type MapEntry struct {
	Key   string
	Value Value
}

func openValueMap(buf []byte, pos int) (ValueMap, error) {
	u, err := readUint32(buf, pos)
	if err != nil {
		return ValueMap{}, fmt.Errorf("%w: value map header: %w", errs.ErrMalformedHeader, err)
	}

	count := int32(u) //nolint:gosec
	if count < 0 {
		return ValueMap{}, fmt.Errorf("%w: negative entry count %d at offset %d", errs.ErrMalformedHeader, count, pos)
	}

	return ValueMap{buf: buf, base: pos, count: int(count)}, nil
}

// Len returns the number of entries.
func (m ValueMap) Len() int {
	return m.count
}

// walk calls fn for each entry with the raw key bytes and the value, stopping
// when fn returns false or an entry fails to decode.
func (m ValueMap) walk(fn func(key []byte, v Value) bool) error {
	cursor := m.base + lengthPrefixSize
	for range m.count {
		key, err := readPrefixed(m.buf, cursor)
		if err != nil {
			return err
		}
		cursor += lengthPrefixSize + len(key)

		bodyLen, err := readLength(m.buf, cursor)
		if err != nil {
			return err
		}
		bodyStart := cursor + lengthPrefixSize
		cursor = bodyStart + bodyLen

		v, err := openBody(m.buf, bodyStart, bodyLen)
		if err != nil {
			return err
		}
		if !fn(key, v) {
			return nil
		}
	}

	return nil
}

// Get returns the value stored under key. The second result is false when the
// key is absent.
func (m ValueMap) Get(key string) (Value, bool, error) {
	var (
		found Value
		ok    bool
	)

	err := m.walk(func(k []byte, v Value) bool {
		if string(k) == key {
			found, ok = v, true
			return false
		}

		return true
	})
	if err != nil {
		return Value{}, false, err
	}

	return found, ok, nil
}

// Has reports whether key is present.
func (m ValueMap) Has(key string) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Keys returns the keys in encoded order.
func (m ValueMap) Keys() ([]string, error) {
	keys := make([]string, 0, m.count)
	err := m.walk(func(k []byte, _ Value) bool {
		keys = append(keys, string(k))
		return true
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// Entries returns an iterator over the entries in encoded order. On a decode
// failure it yields a zero MapEntry with the error once and stops.
func (m ValueMap) Entries() iter.Seq2[MapEntry, error] {
	return func(yield func(MapEntry, error) bool) {
		stopped := false
		err := m.walk(func(k []byte, v Value) bool {
			if !yield(MapEntry{Key: string(k), Value: v}, nil) {
				stopped = true
				return false
			}

			return true
		})
		if err != nil && !stopped {
			yield(MapEntry{}, err)
		}
	}
}
