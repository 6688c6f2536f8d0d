package orm

import (
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Name  string
	Count int64
}

func (c *counter) Validate() error {
	if c.Name == "" {
		return errors.Field("Name", errors.ErrEmpty, "required")
	}
	return nil
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counter")

	var got counter
	err := b.One(db, []byte("a"), &got)
	require.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)

	err = b.Put(db, []byte("a"), &counter{})
	require.True(t, errors.ErrEmpty.Is(err), "unexpected error: %+v", err)

	require.NoError(t, b.Put(db, []byte("a"), &counter{Name: "a", Count: 3}))
	require.NoError(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Name: "a", Count: 3}, got)

	ok, err := b.Has(db, []byte("a"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, b.Delete(db, []byte("a")))
	err = b.Delete(db, []byte("a"))
	require.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)
}

func TestCodec(t *testing.T) {
	cases := map[string]struct {
		model counter
	}{
		"zero value": {model: counter{}},
		"filled":     {model: counter{Name: "a", Count: 3}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := Marshal(&tc.model)
			require.NoError(t, err)
			require.NotEmpty(t, raw)

			got := counter{Name: "stale", Count: 9}
			require.NoError(t, Unmarshal(raw, &got))
			assert.Equal(t, tc.model, got)
		})
	}

	var got counter
	err := Unmarshal([]byte{0x05, 0x01}, &got)
	assert.True(t, errors.ErrModel.Is(err), "unexpected error: %+v", err)
}

func TestModelBucketByPrefix(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counter")
	other := NewModelBucket("counterx")

	require.NoError(t, b.Put(db, CompositeKey("ZB", "GISSUER", "2"), &counter{Name: "2"}))
	require.NoError(t, b.Put(db, CompositeKey("ZB", "GISSUER", "1"), &counter{Name: "1"}))
	require.NoError(t, b.Put(db, CompositeKey("ZC", "GISSUER", "1"), &counter{Name: "other order"}))
	require.NoError(t, other.Put(db, CompositeKey("ZB", "GISSUER", "1"), &counter{Name: "other bucket"}))

	var res []counter
	require.NoError(t, b.ByPrefix(db, CompositeKey("ZB", "GISSUER"), &res))
	assert.Equal(t, []counter{{Name: "1"}, {Name: "2"}}, res)

	var notSlice counter
	err := b.ByPrefix(db, nil, &notSlice)
	assert.True(t, errors.ErrType.Is(err))
}

func TestCompositeKeyDoesNotCollide(t *testing.T) {
	assert.NotEqual(t, CompositeKey("ab", "c"), CompositeKey("a", "bc"))
	assert.Equal(t, CompositeKey("a", "b"), CompositeKey("a", "b"))
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("burn", "log")

	cur, err := s.Current(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cur)

	for want := int64(0); want < 3; want++ {
		got, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	raw, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(3), raw)
	assert.Equal(t, int64(3), DecodeSequence(raw))

	require.NoError(t, s.Init(db, 10))
	got, err := s.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestBucketNames(t *testing.T) {
	assert.Panics(t, func() { NewBucket("no") })
	assert.Panics(t, func() { NewBucket("Upper") })
	assert.NotPanics(t, func() { NewBucket("pending_transfer") })
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("payer")
	require.NoError(t, b.Set(db, []byte("alice"), []byte("GA")))
	require.NoError(t, b.Set(db, []byte("alfred"), []byte("GB")))
	require.NoError(t, b.Set(db, []byte("bob"), []byte("GC")))

	qr := settle.NewQueryRouter()
	b.Register("", qr)
	h := qr.Handler("/payer")
	require.NotNil(t, h)

	cases := map[string]struct {
		mod     string
		data    string
		want    []settle.Model
		wantErr *errors.Error
	}{
		"exact key": {
			mod:  settle.KeyQueryMod,
			data: "bob",
			want: []settle.Model{{Key: []byte("payer:bob"), Value: []byte("GC")}},
		},
		"missing key": {
			mod:  settle.KeyQueryMod,
			data: "carol",
			want: nil,
		},
		"prefix": {
			mod:  settle.PrefixQueryMod,
			data: "al",
			want: []settle.Model{
				{Key: []byte("payer:alfred"), Value: []byte("GB")},
				{Key: []byte("payer:alice"), Value: []byte("GA")},
			},
		},
		"unknown mod": {
			mod:     "range",
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := h.Query(db, tc.mod, []byte(tc.data))
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
