package layout

import (
	"fmt"
	"strconv"

	"github.com/wippyai/layout-codec/errors"
)

// Validate checks the structural invariants of a layout tree: known kinds,
// exactly one child for arrays, no children for strings and primitives, and
// non-empty unique field names for structs.
func Validate(l *Layout) error {
	return validate(l, nil)
}

func validate(l *Layout, path []string) error {
	if l == nil {
		return errors.InvalidLayout(path, "nil layout")
	}
	if !l.Kind.Valid() {
		return errors.InvalidLayout(path, fmt.Sprintf("unknown kind %d", uint8(l.Kind)))
	}

	switch l.Kind {
	case KindStruct:
		seen := make(map[string]struct{}, len(l.Children))
		for i, f := range l.Children {
			if f == nil {
				return errors.InvalidLayout(appendPath(path, "["+strconv.Itoa(i)+"]"), "nil field")
			}
			if f.Name == "" {
				return errors.InvalidLayout(appendPath(path, "["+strconv.Itoa(i)+"]"), "struct field has no name")
			}
			if _, dup := seen[f.Name]; dup {
				return errors.InvalidLayout(path, fmt.Sprintf("duplicate field %q", f.Name))
			}
			seen[f.Name] = struct{}{}
			if err := validate(f, appendPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case KindArray:
		if len(l.Children) != 1 {
			return errors.InvalidLayout(path, fmt.Sprintf("array must have exactly one child, has %d", len(l.Children)))
		}
		return validate(l.Children[0], appendPath(path, "[elem]"))

	default:
		if len(l.Children) != 0 {
			return errors.InvalidLayout(path, fmt.Sprintf("%s layout cannot have children", l.Kind))
		}
		return nil
	}
}

func appendPath(path []string, seg string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), seg)
}
