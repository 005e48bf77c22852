package lists

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when an index falls outside the valid range of a list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyList is returned by accessors that need at least one element.
	ErrEmptyList = errors.New("list is empty")
)

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}
