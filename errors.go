package nullish

import (
	"github.com/signalfx/nullish/errors"
)

func errInvalidSuppress(v interface{}) error {
	return errors.NotValidf("suppress list of type %T", v)
}

func errInvalidSuppressElement(idx int, v interface{}) error {
	return errors.NotValidf("suppress list element %d of type %T", idx, v)
}

// IsInvalidArgument is true if err came from rejecting a suppress list
func IsInvalidArgument(err error) bool {
	return errors.IsNotValid(err)
}
