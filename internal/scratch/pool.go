// Package scratch pools float64 work buffers so that hot transform paths
// do not allocate per call.
package scratch

import "sync"

// Buffer is a reusable float64 work area.
type Buffer struct {
	data []float64
}

// Floats returns the current work slice.
func (b *Buffer) Floats() []float64 {
	return b.data
}

// resize sets the length to n, reusing capacity when possible, and zeroes
// the whole slice so no stale values from earlier use are visible.
func (b *Buffer) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		b.data = make([]float64, n)
	}
	clear(b.data)
}

// Pool provides sync.Pool-based Buffer reuse. It is safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.resize(length)
	return b
}

// Put returns a Buffer to the pool.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
