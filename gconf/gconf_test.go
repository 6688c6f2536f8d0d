package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/store"
)

type testConf struct {
	Account settle.Address `json:"account"`
	Limit   int64          `json:"limit"`
}

func (c *testConf) Validate() error {
	if c.Limit < 0 {
		return errors.Field("Limit", errors.ErrAmount, "negative")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConf
		WantSaveErr *errors.Error
		WantLoadErr *errors.Error
	}{
		"valid": {
			Conf: &testConf{Account: settle.ContractAddress([]byte("a")), Limit: 10},
		},
		"zero value": {
			Conf: &testConf{},
		},
		"invalid cannot be saved": {
			Conf:        &testConf{Limit: -1},
			WantSaveErr: errors.ErrAmount,
			WantLoadErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "test", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			var got testConf
			if err := Load(db, "test", &got); !tc.WantLoadErr.Is(err) {
				t.Fatalf("unexpected load error: %s", err)
			}
			if tc.WantLoadErr == nil && got != *tc.Conf {
				t.Fatalf("want %+v, got %+v", tc.Conf, got)
			}
			ok, err := Exists(db, "test")
			if err != nil {
				t.Fatal(err)
			}
			if ok != (tc.WantSaveErr == nil) {
				t.Fatalf("unexpected exists result %v", ok)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	opts := settle.Options{
		"conf": json.RawMessage(`{"test": {"limit": 7}}`),
	}
	db := store.MemStore()

	var conf testConf
	if err := InitConfig(db, opts, "test", &conf); err != nil {
		t.Fatalf("cannot init: %s", err)
	}
	var got testConf
	if err := Load(db, "test", &got); err != nil {
		t.Fatalf("cannot load: %s", err)
	}
	if got.Limit != 7 {
		t.Fatalf("unexpected configuration %+v", got)
	}

	if err := InitConfig(db, opts, "missing", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestQueryHandler(t *testing.T) {
	db := store.MemStore()
	qr := settle.NewQueryRouter()
	NewQueryHandler("test").Register(qr)
	h := qr.Handler("/test")
	if h == nil {
		t.Fatal("handler not registered")
	}

	res, err := h.Query(db, settle.KeyQueryMod, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(res) != 0 {
		t.Fatalf("want no result, got %d", len(res))
	}

	if err := Save(db, "test", &testConf{Limit: 3}); err != nil {
		t.Fatalf("cannot save: %s", err)
	}
	res, err = h.Query(db, settle.KeyQueryMod, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(res) != 1 || string(res[0].Key) != "_c:test" {
		t.Fatalf("unexpected result: %v", res)
	}

	if _, err := h.Query(db, settle.PrefixQueryMod, nil); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %s", err)
	}
}
