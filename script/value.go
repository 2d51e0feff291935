package script

import (
	"math"

	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/ierrors"
)

// ValueParser converts an argument token into an element.
type ValueParser[T comparable] func(token string) (T, error)

// IntParser parses integer tokens (decimal, or with 0x / 0o / 0b prefixes).
func IntParser(token string) (int, error) {
	value, err := cast.ToIntE(token)
	if err != nil {
		return 0, ierrors.Wrapf(ErrInvalidValue, "%q is not an integer: %s", token, err)
	}

	return value, nil
}

// FloatParser parses floating point tokens. NaN is rejected because it can not be ordered.
func FloatParser(token string) (float64, error) {
	value, err := cast.ToFloat64E(token)
	if err != nil {
		return 0, ierrors.Wrapf(ErrInvalidValue, "%q is not a number: %s", token, err)
	}

	if math.IsNaN(value) {
		return 0, ierrors.Wrapf(ErrInvalidValue, "%q can not be ordered", token)
	}

	return value, nil
}

// StringParser returns the token unchanged.
func StringParser(token string) (string, error) {
	return token, nil
}

// ParseValues converts all tokens and fails on the first invalid one.
func ParseValues[T comparable](parseValue ValueParser[T], tokens []string) ([]T, error) {
	values := make([]T, len(tokens))
	for i, token := range tokens {
		value, err := parseValue(token)
		if err != nil {
			return nil, err
		}

		values[i] = value
	}

	return values, nil
}
