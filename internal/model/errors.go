package model

import "github.com/pkg/errors"

var (
	// ErrTypeMismatch is returned when something that is not a todo is
	// offered to a list.
	ErrTypeMismatch = errors.New("can only add todo objects")
	// ErrIndexOutOfRange is returned for positions outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func indexError(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}
