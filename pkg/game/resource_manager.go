package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrResourceNotFound is returned when a resource ID or prefab ID is not declared
// in the resource configuration.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceManager is responsible for centralized management of game resources.
// It loads images from a file system (the embedded assets in production,
// fstest.MapFS in tests) and caches them so each file is decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_CURSOR_HAND")
type ResourceManager struct {
	fsys       fs.FS
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image

	// YAML resource configuration
	config      *ResourceConfig         // Parsed YAML configuration
	resourceMap map[string]string       // Resource ID -> file path mapping for quick lookup
	prefabs     map[string]*LabelPrefab // Prefab ID -> label template
}

// NewResourceManager creates a ResourceManager reading from fsys.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
		prefabs:     make(map[string]*LabelPrefab),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG.
func (rm *ResourceManager) LoadImage(filePath string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[filePath]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", filePath, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[filePath] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(filePath string) *ebiten.Image {
	return rm.imageCache[filePath]
}

// LoadResourceConfig reads and parses the resource configuration file and
// rebuilds the ID -> path and prefab lookup tables.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded %s: %d resources, %d prefabs",
		configPath, len(rm.resourceMap), len(rm.prefabs))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_CURSOR_HAND -> assets/textures/cursors/cursor_hand.png
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.prefabs = make(map[string]*LabelPrefab)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if path.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}
	}

	for i := range rm.config.Prefabs {
		prefab := &rm.config.Prefabs[i]
		rm.prefabs[prefab.ID] = prefab
	}
}

// ResolvePath returns the file path declared for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("image %s: %w", resourceID, ErrResourceNotFound)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads all images in a group defined in the configuration.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group %s: %w", groupName, ErrResourceNotFound)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	return nil
}

// LabelPrefab returns a copy of the label template registered under id.
func (rm *ResourceManager) LabelPrefab(id string) (LabelPrefab, error) {
	prefab, ok := rm.prefabs[id]
	if !ok {
		return LabelPrefab{}, fmt.Errorf("prefab %s: %w", id, ErrResourceNotFound)
	}
	return *prefab, nil
}
