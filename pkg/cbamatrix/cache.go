package cbamatrix

import "sync"

// Signature identifies the inputs of a generation for change detection.
type Signature struct {
	Purpose         string
	ProjectName     string
	ProjectLocation string
	SourceName      string
	SourceSize      int64
}

// NewSignature builds the signature of a request and its uploaded file.
func NewSignature(req Request, sourceName string, sourceSize int64) Signature {
	req = req.Normalize()
	return Signature{
		Purpose:         req.Purpose,
		ProjectName:     req.ProjectName,
		ProjectLocation: req.ProjectLocation,
		SourceName:      sourceName,
		SourceSize:      sourceSize,
	}
}

// Cache holds the last generated result and the signature it was made from.
// The zero value is ready to use.
type Cache struct {
	mu     sync.Mutex
	sig    Signature
	result *Result
}

// Get returns the cached result when sig matches the last generation, otherwise
// it calls generate and caches its result. The bool reports a cache hit. A
// failed generation clears the cache.
func (c *Cache) Get(sig Signature, generate func() (*Result, error)) (*Result, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result != nil && c.sig == sig {
		return c.result, true, nil
	}

	result, err := generate()
	if err != nil {
		c.result = nil
		c.sig = Signature{}
		return nil, false, err
	}
	c.sig = sig
	c.result = result
	return result, false, nil
}

// Last returns the most recent result, or nil.
func (c *Cache) Last() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Reset drops the cached result.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = nil
	c.sig = Signature{}
}
