package system

import (
	"image"
	"sync"
)

// FramePool recycles output frame buffers between render workers to keep
// GC pressure flat during long encodes. Pools are keyed by geometry so a
// preview and a render at different sizes don't trade buffers.
type FramePool struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex
}

var globalPool = &FramePool{
	pools: make(map[string]*sync.Pool),
}

// GetFrame returns an RGBA buffer of the given geometry, reused when one
// is available.
func GetFrame(rect image.Rectangle) *image.RGBA {
	return globalPool.Get(rect)
}

// PutFrame returns a buffer for reuse. The contents are not cleared;
// callers always overwrite the full frame.
func PutFrame(img *image.RGBA) {
	globalPool.Put(img)
}

func (p *FramePool) Get(rect image.Rectangle) *image.RGBA {
	key := rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		pool, exists = p.pools[key]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewRGBA(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

func (p *FramePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
