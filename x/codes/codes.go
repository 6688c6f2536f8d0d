/*
Package codes allocates the asset codes of orders.

Codes are a base 62 counter over the Alphabet, most significant symbol
first. Every allocation increments the stored counter and prepends the
requested prefix to it. The prefix is never stored, so codes allocated
with different prefixes still share a single, strictly increasing counter.
*/
package codes

import (
	"strings"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/gconf"
)

const (
	// Alphabet lists the counter symbols in increasing order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Initial is the counter value before the first allocation.
	Initial = "A"

	// MaxWidth is the longest code, prefix included, that an asset can
	// carry.
	MaxWidth = 12

	pkg = "codes"
)

// Counter is the last allocated code without its prefix.
type Counter struct {
	Last string
}

var _ gconf.Configuration = (*Counter)(nil)

// Validate ensures the counter holds only alphabet symbols.
func (c *Counter) Validate() error {
	if c.Last == "" {
		return errors.Field("Last", errors.ErrEmpty, "counter")
	}
	if err := validSymbols(c.Last); err != nil {
		return errors.Field("Last", err, "counter")
	}
	return nil
}

// Last returns the stored counter, or Initial if nothing was allocated
// yet.
func Last(db gconf.ReadStore) (string, error) {
	var c Counter
	switch err := gconf.Load(db, pkg, &c); {
	case err == nil:
		return c.Last, nil
	case errors.ErrNotFound.Is(err):
		return Initial, nil
	default:
		return "", errors.Wrap(err, "load counter")
	}
}

// Next increments the stored counter and returns it with given prefix.
//
// A code longer than MaxWidth is never truncated. Next fails instead and
// the counter is left unchanged.
func Next(db settle.KVStore, prefix string) (string, error) {
	if err := validSymbols(prefix); err != nil {
		return "", errors.Wrap(err, "prefix")
	}
	last, err := Last(db)
	if err != nil {
		return "", err
	}
	next := Increment(last)
	code := prefix + next
	if len(code) > MaxWidth {
		return "", errors.Wrapf(errors.ErrState, "code %q exceeds %d symbols", code, MaxWidth)
	}
	if err := gconf.Save(db, pkg, &Counter{Last: next}); err != nil {
		return "", errors.Wrap(err, "save counter")
	}
	return code, nil
}

// Increment returns the counter following s. When every symbol wraps
// around, the counter grows by one symbol. Symbols outside of the Alphabet
// are left untouched and the carry passes over them.
func Increment(s string) string {
	out := []byte(s)
	for i := len(out) - 1; i >= 0; i-- {
		pos := strings.IndexByte(Alphabet, out[i])
		if pos < 0 {
			continue
		}
		if pos < len(Alphabet)-1 {
			out[i] = Alphabet[pos+1]
			return string(out)
		}
		out[i] = Alphabet[0]
	}
	return Alphabet[:1] + string(out)
}

// Less compares two counters: a shorter counter is always smaller, counters
// of the same length are compared symbol by symbol in Alphabet order.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := 0; i < len(a); i++ {
		x, y := strings.IndexByte(Alphabet, a[i]), strings.IndexByte(Alphabet, b[i])
		if x != y {
			return x < y
		}
	}
	return false
}

func validSymbols(s string) error {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return errors.Wrapf(errors.ErrInput, "symbol %q is not allowed", s[i])
		}
	}
	return nil
}
