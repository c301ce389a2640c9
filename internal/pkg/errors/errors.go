package errors

import "errors"

var ErrInvalid = errors.New("invalid")

func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
