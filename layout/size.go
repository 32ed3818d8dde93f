package layout

import (
	"strconv"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
)

// SizeInBytes returns the number of leading bytes of buf that one encoded
// value of l occupies. Later array elements and struct fields are sized
// from where the previous ones end. A buffer too short for the value fails
// with truncated_input; l is expected to be valid (see Validate).
func (l *Layout) SizeInBytes(buf []byte) (int, error) {
	r := wire.NewReader(buf)
	if err := skip(l, r); err != nil {
		return 0, err
	}
	return r.Position(), nil
}

func skip(l *Layout, r *wire.Reader) error {
	switch l.Kind {
	case KindStruct:
		for _, f := range l.Children {
			if err := skip(f, r); err != nil {
				return errors.Prefix(err, f.Name)
			}
		}
		return nil

	case KindArray:
		elem := l.Elem()
		if elem == nil {
			return errors.InvalidLayout(nil, "array has no element layout")
		}
		count, err := r.ReadLength()
		if err != nil {
			return err
		}
		if err := CheckCount(count, MinSize(elem), r.Remaining()); err != nil {
			return err
		}
		if _, fixed := FixedSize(elem); fixed {
			return r.Skip(count * MinSize(elem))
		}
		for i := uint64(0); i < count; i++ {
			if err := skip(elem, r); err != nil {
				return errors.Prefix(err, "["+strconv.FormatUint(i, 10)+"]")
			}
		}
		return nil

	case KindString:
		n, err := r.ReadLength()
		if err != nil {
			return err
		}
		return r.Skip(n)

	default:
		if !l.Kind.IsPrimitive() {
			return errors.InvalidLayout(nil, "unknown kind "+l.Kind.String())
		}
		return r.Skip(uint64(l.Kind.Width()))
	}
}

// CheckCount fails with truncated_input when count elements of at least
// minElem bytes each cannot fit in remaining bytes. It runs before any
// per-element work so an oversized count prefix is rejected up front.
func CheckCount(count, minElem uint64, remaining int) error {
	if minElem == 0 || count <= uint64(remaining)/minElem {
		return nil
	}
	return errors.New(errors.PhaseDecode, errors.KindTruncatedInput).
		Detail("%d elements of at least %d bytes each, %d bytes remaining", count, minElem, remaining).
		Value(count).
		Build()
}

// MinSize returns the smallest number of bytes any encoded value of l can
// occupy: empty strings and arrays count as their 8-byte prefix.
func MinSize(l *Layout) uint64 {
	switch l.Kind {
	case KindStruct:
		var total uint64
		for _, f := range l.Children {
			total += MinSize(f)
		}
		return total
	case KindArray, KindString:
		return wire.PrefixSize
	default:
		return uint64(l.Kind.Width())
	}
}

// FixedSize returns the encoded size of l when it contains no strings or
// arrays, in which case every value of l has the same size.
func FixedSize(l *Layout) (int, bool) {
	switch l.Kind {
	case KindStruct:
		total := 0
		for _, f := range l.Children {
			n, ok := FixedSize(f)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	case KindArray, KindString:
		return 0, false
	default:
		return l.Kind.Width(), l.Kind.IsPrimitive()
	}
}
