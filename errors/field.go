package errors

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Field marks err as caused by the value of a single message or model
// field, named the Go way (OrderID, Amount). It returns nil if err is nil.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField adds the error of a field, if any, to the errors collected so
// far. Validate methods chain it once per field.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

func (err *fieldError) Cause() error {
	return err.parent
}

// FieldErrors returns the errors reported for the given field.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	walkFields(err, func(f *fieldError) {
		if f.field == fieldName {
			res = append(res, f)
		}
	})
	return res
}

// Fields returns the sorted names of all fields err reports as invalid.
func Fields(err error) []string {
	seen := make(map[string]struct{})
	walkFields(err, func(f *fieldError) {
		seen[f.field] = struct{}{}
	})
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walkFields calls fn for the outermost field error of every branch of err.
// Wrapping layers and multi errors are unpacked.
func walkFields(err error, fn func(*fieldError)) {
	for !isNilErr(err) {
		if f, ok := err.(*fieldError); ok {
			fn(f)
			return
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				walkFields(e, fn)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
