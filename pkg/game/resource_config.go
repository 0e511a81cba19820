package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	prefabs:
//	  - id: UI/ObjectNameCanvas
//	    ...
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
	Prefabs  []LabelPrefab            `yaml:"prefabs"`   // UI label templates
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	cursors:
//	  images:
//	    - id: IMAGE_CURSOR_ATTACK
//	      path: textures/cursors/cursor_attack
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_CURSOR_HAND")
//   - Path: Relative path from base_path to the image file (extension optional, defaults to .png)
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// LabelPrefab describes a floating text label template.
//
// Example:
//
//	- id: UI/ObjectNameCanvas
//	  offset_y: -28
//	  padding: 4
//	  background: "#000000A0"
type LabelPrefab struct {
	ID         string  `yaml:"id"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	Padding    float64 `yaml:"padding"`
	Background string  `yaml:"background"` // #RRGGBB or #RRGGBBAA, empty for none
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
//	buildFullPath("assets", "textures/a.png") -> "assets/textures/a.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
