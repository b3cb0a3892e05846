package cbamatrix

import (
	"errors"
	"testing"
)

func TestCacheGet(t *testing.T) {
	var c Cache
	calls := 0
	gen := func() (*Result, error) {
		calls++
		return &Result{Filename: "out.xlsx"}, nil
	}

	req := Request{Purpose: "Underpinning", ProjectName: "A", ProjectLocation: "B"}
	sig := NewSignature(req, "t.xlsx", 10)

	if _, hit, err := c.Get(sig, gen); err != nil || hit {
		t.Fatalf("first Get: hit=%v err=%v", hit, err)
	}
	if _, hit, _ := c.Get(sig, gen); !hit {
		t.Error("second Get should hit")
	}

	// Whitespace differences do not change the signature.
	padded := NewSignature(Request{Purpose: " Underpinning ", ProjectName: "A", ProjectLocation: "B "}, "t.xlsx", 10)
	if _, hit, _ := c.Get(padded, gen); !hit {
		t.Error("normalized request should hit")
	}

	if _, hit, _ := c.Get(NewSignature(req, "t.xlsx", 11), gen); hit {
		t.Error("changed size should miss")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if c.Last() == nil {
		t.Error("Last should return the cached result")
	}
}

func TestCacheFailureClears(t *testing.T) {
	var c Cache
	sig := NewSignature(Request{Purpose: "P"}, "t.xlsx", 1)
	c.Get(sig, func() (*Result, error) { return &Result{}, nil })

	boom := errors.New("boom")
	if _, _, err := c.Get(NewSignature(Request{Purpose: "Q"}, "t.xlsx", 1), func() (*Result, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if c.Last() != nil {
		t.Error("failed generation should clear the cache")
	}

	c.Get(sig, func() (*Result, error) { return &Result{}, nil })
	c.Reset()
	if c.Last() != nil {
		t.Error("Reset should clear the cache")
	}
}
