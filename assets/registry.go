// Package assets holds the named image and font resources composited onto
// weather cards. The registry is populated once at startup and read-only
// afterwards.
package assets

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
	"weathercards.app/errors"
)

// Kind distinguishes the two resource variants
type Kind string

const (
	KindImage Kind = "image"
	KindFont  Kind = "font"
)

// FontMeta carries typeface information for font assets
type FontMeta struct {
	Family string
	Weight int
	Style  string
}

// Asset is one registered resource. Image is set after loading for image
// assets, Font for font assets; the other field stays nil.
type Asset struct {
	ID    string
	Kind  Kind
	Path  string
	Meta  FontMeta
	Image image.Image
	Font  *opentype.Font
}

func (a *Asset) isLoaded() bool {
	if a.Kind == KindFont {
		return a.Font != nil
	}
	return a.Image != nil
}

// Registry resolves symbolic asset ids to loaded resources. Lookups are
// case-insensitive exact matches on id, optionally narrowed by kind.
type Registry struct {
	mu     sync.RWMutex
	assets []*Asset
	loaded bool
	loader Loader
}

func NewRegistry(loader Loader) *Registry {
	return &Registry{loader: loader}
}

// RegisterImage adds an image resource to the registry
func (r *Registry) RegisterImage(id, path string) error {
	return r.register(id, KindImage, path, FontMeta{})
}

// RegisterFont adds a font resource with typeface metadata to the registry
func (r *Registry) RegisterFont(id, path string, meta FontMeta) error {
	return r.register(id, KindFont, path, meta)
}

func (r *Registry) register(id string, kind Kind, path string, meta FontMeta) error {
	if id == "" || path == "" {
		return errors.NewValidationError("asset registration requires both an id and a source path")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lookup(id, kind, true) != nil {
		return errors.NewDuplicateResourceError(
			fmt.Sprintf("asset %q of kind %q already exists", id, kind))
	}

	asset := &Asset{ID: id, Kind: kind, Path: path, Meta: meta}
	r.assets = append(r.assets, asset)

	// After the initial load phase, late registrations load eagerly
	if r.loaded {
		if err := r.load(asset); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the first asset matching the id, or nil when absent.
// Callers treat nil as "feature not available"; only structurally required
// layers escalate a missing asset into an error.
func (r *Registry) Resolve(id string) *Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(id, "", false)
}

// ResolveKind returns the asset matching both id and kind, or nil
func (r *Registry) ResolveKind(id string, kind Kind) *Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(id, kind, true)
}

// Image returns the loaded pixel data for an image asset, or nil
func (r *Registry) Image(id string) image.Image {
	if asset := r.ResolveKind(id, KindImage); asset != nil {
		return asset.Image
	}
	return nil
}

// Font returns the parsed font for a font asset, or nil
func (r *Registry) Font(id string) *opentype.Font {
	if asset := r.ResolveKind(id, KindFont); asset != nil {
		return asset.Font
	}
	return nil
}

// lookup must be called with the mutex held
func (r *Registry) lookup(id string, kind Kind, matchKind bool) *Asset {
	for _, asset := range r.assets {
		if !strings.EqualFold(asset.ID, id) {
			continue
		}
		if matchKind && asset.Kind != kind {
			continue
		}
		return asset
	}
	return nil
}

// LoadAll realizes the backing data of every registered asset. Entries
// already loaded are skipped, so a second call loads nothing. Returns the
// number of assets loaded by this call.
func (r *Registry) LoadAll() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, asset := range r.assets {
		if asset.isLoaded() {
			continue
		}
		if err := r.load(asset); err != nil {
			return count, err
		}
		count++
	}

	r.loaded = true
	slog.Info("Loaded asset resources", "count", count)
	return count, nil
}

// load must be called with the mutex held
func (r *Registry) load(asset *Asset) error {
	switch asset.Kind {
	case KindImage:
		img, err := r.loader.LoadImage(asset.Path)
		if err != nil {
			return errors.NewConfigurationError(
				fmt.Sprintf("failed to load image asset %q from %s", asset.ID, asset.Path), err)
		}
		asset.Image = img
	case KindFont:
		fnt, err := r.loader.LoadFont(asset.Path)
		if err != nil {
			return errors.NewConfigurationError(
				fmt.Sprintf("failed to load font asset %q from %s", asset.ID, asset.Path), err)
		}
		asset.Font = fnt
	default:
		return errors.NewValidationError(fmt.Sprintf("unrecognized asset kind %q", asset.Kind))
	}

	slog.Debug("Loaded asset", "id", asset.ID, "kind", asset.Kind, "path", asset.Path)
	return nil
}
