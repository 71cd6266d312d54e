package views

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSort  = errors.New("unknown sort key")
	ErrUnknownOrder = errors.New("unknown sort order")
	ErrBadPaging    = errors.New("offset and limit must not be negative")
)

func validatePaging(order string, offset, limit int) error {
	if order != "" && order != Asc && order != Desc {
		return fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	if offset < 0 || limit < 0 {
		return ErrBadPaging
	}
	return nil
}

// paginate slices items by offset and limit. A zero limit returns everything after offset.
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
