package priorityqueue

import (
	"reflect"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidArgument is returned when an absent (nil) or self-unequal (NaN) value is handed to the queue.
	ErrInvalidArgument = ierrors.New("invalid argument")

	// ErrEmptyCollection is returned when the minimum of an empty queue is requested.
	ErrEmptyCollection = ierrors.New("empty collection")
)

// isAbsent returns true if the value is a nil pointer, interface, channel, map, function or slice.
func isAbsent[T any](value T) bool {
	switch reflectedValue := reflect.ValueOf(&value).Elem(); reflectedValue.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return reflectedValue.IsNil()
	default:
		return false
	}
}

// validate returns ErrInvalidArgument if the value can not be stored. Absent values have no priority and values that
// are not equal to themselves (NaN) can never be found in the position index again.
func validate[T comparable](value T) error {
	if isAbsent(value) {
		return ierrors.Wrap(ErrInvalidArgument, "nil values can not be stored in the queue")
	}

	//nolint:gocritic // NaN is the only value that is not equal to itself
	if value != value {
		return ierrors.Wrapf(ErrInvalidArgument, "%v is not equal to itself and can not be ordered", value)
	}

	return nil
}
