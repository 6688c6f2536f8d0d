package x

import (
	"regexp"

	"github.com/iov-one/settle/errors"
)

var isReference = regexp.MustCompile(`^[a-zA-Z0-9_.:\-]{1,64}$`).MatchString

// ValidateReference returns an error if ref cannot be used as an external
// identifier, like an order, a payment or a payer identifier.
func ValidateReference(ref string) error {
	if ref == "" {
		return errors.ErrEmpty
	}
	if !isReference(ref) {
		return errors.Wrapf(errors.ErrInput, "invalid reference %q", ref)
	}
	return nil
}
