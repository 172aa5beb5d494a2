// Package resource hands out reference-counted textures, fonts and meshes
// loaded from an fs.FS.
package resource

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // texture format
	"io/fs"
	"log/slog"
	"sync"

	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// ErrNotFound is returned for paths the manager cannot resolve
var ErrNotFound = errors.New("resource not found")

// Upload turns a decoded image into a drawable surface
type Upload func(img image.Image) render.Surface

// entry is one loaded resource shared by every handle on its path
type entry struct {
	kind    asset.Kind
	refs    int
	texture render.Surface
	mesh    []byte
}

type key struct {
	kind asset.Kind
	path string
}

// Manager implements the screens' Resources collaborator
type Manager struct {
	mu      sync.Mutex
	fsys    fs.FS
	upload  Upload
	fonts   map[string]bool
	entries map[key]*entry
	handles map[uint64]key
	nextID  uint64
	log     *slog.Logger
}

// NewManager creates a manager reading from fsys. upload may be nil, in
// which case textures are decoded but never drawn.
func NewManager(fsys fs.FS, upload Upload, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		fsys:    fsys,
		upload:  upload,
		fonts:   make(map[string]bool),
		entries: make(map[key]*entry),
		handles: make(map[uint64]key),
		log:     log,
	}
}

// RegisterFont makes a built-in font available under path
func (m *Manager) RegisterFont(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[path] = true
}

// AcquireTexture loads a PNG texture
func (m *Manager) AcquireTexture(path string) (asset.Handle, bool) {
	return m.acquire(asset.KindTexture, path)
}

// AcquireFont acquires a registered font
func (m *Manager) AcquireFont(path string) (asset.Handle, bool) {
	return m.acquire(asset.KindFont, path)
}

// AcquireMesh loads raw mesh data
func (m *Manager) AcquireMesh(path string) (asset.Handle, bool) {
	return m.acquire(asset.KindMesh, path)
}

func (m *Manager) acquire(kind asset.Kind, path string) (asset.Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{kind: kind, path: path}
	e, ok := m.entries[k]
	if !ok {
		var err error
		e, err = m.load(kind, path)
		if err != nil {
			m.log.Warn("failed to acquire resource", "kind", kind.String(), "path", path, "err", err)
			return asset.Handle{}, false
		}
		m.entries[k] = e
	}

	e.refs++
	m.nextID++
	m.handles[m.nextID] = k
	return asset.Handle{ID: m.nextID, Kind: kind, Path: path}, true
}

func (m *Manager) load(kind asset.Kind, path string) (*entry, error) {
	e := &entry{kind: kind}
	switch kind {
	case asset.KindFont:
		if !m.fonts[path] {
			return nil, fmt.Errorf("font %s: %w", path, ErrNotFound)
		}
	case asset.KindMesh:
		data, err := fs.ReadFile(m.fsys, path)
		if err != nil {
			return nil, m.readError(path, err)
		}
		e.mesh = data
	case asset.KindTexture:
		f, err := m.fsys.Open(path)
		if err != nil {
			return nil, m.readError(path, err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if m.upload != nil {
			e.texture = m.upload(img)
		}
	default:
		return nil, fmt.Errorf("unknown resource kind %d", kind)
	}
	return e, nil
}

func (m *Manager) readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", path, err)
}

// Release gives a handle back. The resource is unloaded when its last
// handle is released. Releasing a handle twice is a violation.
func (m *Manager) Release(h asset.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := m.handles[h.ID]
	if !invariant.Check(ok, "release of unknown or released handle", "handle", h.String()) {
		return
	}
	delete(m.handles, h.ID)

	e := m.entries[k]
	e.refs--
	if e.refs > 0 {
		return
	}
	if e.texture != nil {
		e.texture.Dispose()
	}
	delete(m.entries, k)
}

// Texture returns the surface of a live texture handle, or nil
func (m *Manager) Texture(h asset.Handle) render.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k, ok := m.handles[h.ID]; ok && k.kind == asset.KindTexture {
		return m.entries[k].texture
	}
	return nil
}

// Mesh returns the data of a live mesh handle, or nil
func (m *Manager) Mesh(h asset.Handle) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k, ok := m.handles[h.ID]; ok && k.kind == asset.KindMesh {
		return m.entries[k].mesh
	}
	return nil
}

// Outstanding returns the number of handles not yet released
func (m *Manager) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

// Loaded returns the number of resources currently in memory
func (m *Manager) Loaded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
