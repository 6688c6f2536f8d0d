package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/settle/errors"
)

func TestBech32EncodeDecode(t *testing.T) {
	// bech32  -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "tiov" {
		t.Fatalf("unexpected prefix %q", hrp)
	}
	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestBech32DecodeExpect(t *testing.T) {
	raw, err := Encode("settle", []byte("contract-payload"))
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if _, err := DecodeExpect("settle", raw); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := DecodeExpect("other", raw); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
	if _, _, err := Decode("settle1invalid"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
