// Package pool provides typed object pooling for the conversion engine's
// scratch memory.
//
// Text rendering and transcoding need short-lived byte buffers for every
// string-target conversion. Pooling them keeps a bound array of N rows from
// producing N garbage buffers per column.
//
// Example usage:
//
//	scratch := pool.GetBytes()
//	defer pool.PutBytes(scratch)
//
//	*scratch = strconv.AppendInt(*scratch, v, 10)
//
//	// Using custom pools
//	myPool := pool.New(
//	    func() *MyType { return &MyType{} },
//	    func(obj *MyType) { obj.Reset() },
//	)
//	obj := myPool.Get()
//	defer myPool.Put(obj)
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a generic object pool with type safety.
// It wraps sync.Pool with statistics tracking and an optional reset hook.
// The pool is safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
	stats struct {
		allocated int64
		inUse     int64
		gets      int64
		puts      int64
	}
}

// New creates a typed pool. The new function is called when the pool is
// empty; reset, when non-nil, runs before an object goes back into the pool.
//
//	pool := New(
//	    func() *Buffer { return &Buffer{data: make([]byte, 0, 1024)} },
//	    func(b *Buffer) { b.data = b.data[:0] },
//	)
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.pool.New = func() interface{} {
		atomic.AddInt64(&p.stats.allocated, 1)
		return newFn()
	}
	return p
}

// Get retrieves an object from the pool, allocating one if it is empty.
func (p *Pool[T]) Get() T {
	atomic.AddInt64(&p.stats.inUse, 1)
	atomic.AddInt64(&p.stats.gets, 1)
	return p.pool.Get().(T)
}

// Put resets obj and returns it to the pool.
func (p *Pool[T]) Put(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	atomic.AddInt64(&p.stats.inUse, -1)
	atomic.AddInt64(&p.stats.puts, 1)
	p.pool.Put(obj)
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Allocated int64 `json:"allocated"`
	InUse     int64 `json:"in_use"`
	Gets      int64 `json:"gets"`
	Puts      int64 `json:"puts"`
}

// Stats returns the current counters. Allocated counts objects created by the
// factory, so Gets - Allocated is the number of reuses.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Allocated: atomic.LoadInt64(&p.stats.allocated),
		InUse:     atomic.LoadInt64(&p.stats.inUse),
		Gets:      atomic.LoadInt64(&p.stats.gets),
		Puts:      atomic.LoadInt64(&p.stats.puts),
	}
}

// maxPooledBytes bounds the capacity of slices kept by the byte pool. Larger
// slices are dropped so one huge binary value does not pin memory forever.
const maxPooledBytes = 64 * 1024

var bytePool = New(
	func() *[]byte {
		b := make([]byte, 0, 256)
		return &b
	},
	func(b *[]byte) { *b = (*b)[:0] },
)

// GetBytes returns an empty scratch slice from the global byte pool.
func GetBytes() *[]byte {
	return bytePool.Get()
}

// PutBytes returns a scratch slice to the global byte pool.
func PutBytes(b *[]byte) {
	if b == nil || cap(*b) > maxPooledBytes {
		return
	}
	bytePool.Put(b)
}

// ByteStats returns the statistics of the global byte pool.
func ByteStats() Stats {
	return bytePool.Stats()
}
