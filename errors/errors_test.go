package errors

import (
	stdlib "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrIncorrectTransfer,
			b:      Wrap(ErrIncorrectTransfer, "gone"),
			wantIs: true,
		},
		"pkg errors wrap is unwrapped": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrUnknownSigner,
			b:      Wrap(ErrNotInitialized, "admin"),
			wantIs: false,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrNotFound,
			b:      nil,
			wantIs: false,
		},
		"multi error with the same error": {
			a:      ErrNegativeAmount,
			b:      Append(ErrMsg, Field("Amount", ErrNegativeAmount, "net")),
			wantIs: true,
		},
		"multi error with different errors": {
			a:      ErrNotFound,
			b:      Append(ErrMsg, ErrState),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct {
}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrBadArgs.Code(), "again")
}

func TestInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error": {
			err:      nil,
			wantCode: SuccessCode,
			wantLog:  "",
		},
		"registered error": {
			err:      ErrNotEnoughSigners,
			wantCode: 106,
			wantLog:  "not enough signers",
		},
		"wrapped registered error": {
			err:      Wrap(ErrIncorrectTransfer, "W1"),
			wantCode: 111,
			wantLog:  "W1: incorrect transfer",
		},
		"stdlib error is redacted": {
			err:      fmt.Errorf("secret"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"multi error uses first code": {
			err:      Append(ErrNegativeAmount, ErrMsg),
			wantCode: 104,
			wantLog:  "2 errors occurred:\n\t* negative amount\n\t* invalid message",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := Info(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestInfoDebugStackTrace(t *testing.T) {
	_, log := Info(ErrState.New("broken"), true)
	if !strings.Contains(log, "errors_test.go") {
		t.Fatalf("stack trace missing: %s", log)
	}
}

func TestRedact(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("boom")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
	if got := Redact(err, false); got.Error() != "internal error" {
		t.Fatalf("want redacted error, got %q", got)
	}
	if got := Redact(ErrBadArgs, false); got != ErrBadArgs {
		t.Fatalf("registered errors must not be redacted, got %v", got)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Amount", ErrNegativeAmount, "must be positive"),
		Field("OrderID", ErrEmpty, "required"),
		nil,
	)
	if got := FieldErrors(err, "Amount"); len(got) != 1 || !ErrNegativeAmount.Is(got[0]) {
		t.Fatalf("unexpected Amount errors: %v", got)
	}
	if got := FieldErrors(err, "Fee"); len(got) != 0 {
		t.Fatalf("unexpected Fee errors: %v", got)
	}
	wrapped := Wrap(Append(err, Field("Fee", ErrAmount, "")), "mint")
	if got := Fields(wrapped); !reflect.DeepEqual(got, []string{"Amount", "Fee", "OrderID"}) {
		t.Fatalf("unexpected fields: %v", got)
	}
	if got := Fields(ErrAmount); got != nil {
		t.Fatalf("want no fields, got %v", got)
	}
	if Append(nil, nil) != nil {
		t.Fatal("append of nils must be nil")
	}
}
