// Package assets loads sprite images in the background and hands them to
// the render loop at a frame boundary.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // sprite format
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrNotLoaded is returned for keys that were never requested.
var ErrNotLoaded = errors.New("image not loaded")

// ImageManager caches decoded images by key.
//
// Loads run on goroutines. Concurrent requests for one key share a single
// read and decode. Decoded images become visible to Image only after Sync,
// which the game calls once at the start of each frame, so a frame never
// sees an image appear halfway through.
type ImageManager struct {
	fsys  fs.FS
	group singleflight.Group

	mu      sync.Mutex
	decoded map[string]image.Image
	failed  map[string]error
	pending []string // decoded but not yet published

	published map[string]*ebiten.Image
	toEbiten  func(image.Image) *ebiten.Image
}

// NewImageManager creates a manager reading from fsys.
func NewImageManager(fsys fs.FS) *ImageManager {
	return &ImageManager{
		fsys:      fsys,
		decoded:   make(map[string]image.Image),
		failed:    make(map[string]error),
		published: make(map[string]*ebiten.Image),
		toEbiten:  ebiten.NewImageFromImage,
	}
}

// Load reads and decodes the image at path under key, blocking until done.
// A cached key returns immediately.
func (m *ImageManager) Load(ctx context.Context, key, path string) (image.Image, error) {
	m.mu.Lock()
	if img, ok := m.decoded[key]; ok {
		m.mu.Unlock()
		return img, nil
	}
	m.mu.Unlock()

	ch := m.group.DoChan(key, func() (any, error) {
		return m.decode(key, path)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(image.Image), nil
	}
}

func (m *ImageManager) decode(key, path string) (image.Image, error) {
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		err = fmt.Errorf("failed to read image %s: %w", path, err)
		m.fail(key, err)
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("failed to decode image %s: %w", path, err)
		m.fail(key, err)
		return nil, err
	}

	m.mu.Lock()
	m.decoded[key] = img
	delete(m.failed, key)
	m.pending = append(m.pending, key)
	m.mu.Unlock()
	return img, nil
}

func (m *ImageManager) fail(key string, err error) {
	m.mu.Lock()
	m.failed[key] = err
	m.mu.Unlock()
}

// Preload loads every key in paths concurrently and waits. It returns the
// first error, but keeps every image that did load.
func (m *ImageManager) Preload(ctx context.Context, paths map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	for key, path := range paths {
		g.Go(func() error {
			_, err := m.Load(ctx, key, path)
			return err
		})
	}
	return g.Wait()
}

// Sync publishes images decoded since the previous call. It must run on the
// game goroutine.
func (m *ImageManager) Sync() {
	m.mu.Lock()
	keys := m.pending
	m.pending = nil
	imgs := make([]image.Image, len(keys))
	for i, k := range keys {
		imgs[i] = m.decoded[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		m.published[k] = m.toEbiten(imgs[i])
	}
}

// Image returns the published image for key, or nil if it is not ready.
func (m *ImageManager) Image(key string) *ebiten.Image {
	return m.published[key]
}

// Loaded reports whether key has been published.
func (m *ImageManager) Loaded(key string) bool {
	_, ok := m.published[key]
	return ok
}

// Err returns the load error for key, ErrNotLoaded if it was never
// decoded, or nil once decoded.
func (m *ImageManager) Err(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failed[key]; ok {
		return err
	}
	if _, ok := m.decoded[key]; ok {
		return nil
	}
	return ErrNotLoaded
}
