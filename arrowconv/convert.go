// Package arrowconv exports bbdata arrays as Apache Arrow columns.
//
// Each view.Array maps to one Arrow array of the matching type. Values are
// decoded in a single pass with the view bulk accessors and copied into
// Arrow-owned memory, so the result stays valid after the bbdata buffer is
// released.
//
//	BOOLEAN -> Boolean    INTEGER -> Int32    LONG   -> Int64
//	FLOAT   -> Float32    DOUBLE  -> Float64  STRING -> String
//	VALUE   -> Binary (each element's encoded body, tag included)
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/arloliu/bbdata/format"
	"github.com/arloliu/bbdata/view"
)

// DataType returns the Arrow type an array of the given element type exports to.
func DataType(elem format.ElementType) (arrow.DataType, error) {
	switch elem {
	case format.ElementBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case format.ElementInteger:
		return arrow.PrimitiveTypes.Int32, nil
	case format.ElementLong:
		return arrow.PrimitiveTypes.Int64, nil
	case format.ElementFloat:
		return arrow.PrimitiveTypes.Float32, nil
	case format.ElementDouble:
		return arrow.PrimitiveTypes.Float64, nil
	case format.ElementString:
		return arrow.BinaryTypes.String, nil
	case format.ElementValue:
		return arrow.BinaryTypes.Binary, nil
	default:
		return nil, fmt.Errorf("no arrow type for element type %s", elem)
	}
}

// ToArrow converts arr into a new Arrow array allocated from mem. A nil mem
// uses memory.DefaultAllocator. The caller must Release the result.
func ToArrow(arr view.Array, mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	dt, err := DataType(arr.ElementType())
	if err != nil {
		return nil, err
	}

	b := array.NewBuilder(mem, dt)
	defer b.Release()

	if err := appendArray(b, arr); err != nil {
		return nil, err
	}

	return b.NewArray(), nil
}

// ToRecord converts equally long arrays into one record with a column per
// array, named by names. The caller must Release the result.
func ToRecord(names []string, arrs []view.Array, mem memory.Allocator) (arrow.Record, error) {
	if len(names) != len(arrs) {
		return nil, fmt.Errorf("got %d column names for %d arrays", len(names), len(arrs))
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fields := make([]arrow.Field, len(arrs))
	for i, arr := range arrs {
		if arr.Len() != arrs[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, column %q has %d",
				names[i], arr.Len(), names[0], arrs[0].Len())
		}

		dt, err := DataType(arr.ElementType())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", names[i], err)
		}
		fields[i] = arrow.Field{Name: names[i], Type: dt}
	}

	builder := array.NewRecordBuilder(mem, arrow.NewSchema(fields, nil))
	defer builder.Release()

	for i, arr := range arrs {
		if err := appendArray(builder.Field(i), arr); err != nil {
			return nil, fmt.Errorf("column %q: %w", names[i], err)
		}
	}

	return builder.NewRecord(), nil
}

// appendArray decodes arr and appends every element to b, whose type must be
// DataType(arr.ElementType()).
func appendArray(b array.Builder, arr view.Array) error {
	switch bld := b.(type) {
	case *array.BooleanBuilder:
		vals, err := arr.Bools()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.Int32Builder:
		vals, err := arr.Int32s()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.Int64Builder:
		vals, err := arr.Int64s()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.Float32Builder:
		vals, err := arr.Float32s()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.Float64Builder:
		vals, err := arr.Float64s()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.StringBuilder:
		vals, err := arr.Strings()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	case *array.BinaryBuilder:
		vals, err := arr.RawElements()
		if err != nil {
			return err
		}
		bld.AppendValues(vals, nil)
	default:
		return fmt.Errorf("unsupported arrow builder %T", b)
	}

	return nil
}
