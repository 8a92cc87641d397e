// ABOUTME: Settings loading for the editor: built-in defaults merged with an optional YAML file
// ABOUTME: Controls the welcome banner text, its visibility, and the empty-row marker

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// VersionPlaceholder in the banner is replaced with the editor version.
const VersionPlaceholder = "{version}"

// Defaults for the renderer.
const (
	DefaultBanner = "Kilo editor -- version " + VersionPlaceholder
	DefaultMarker = "~"
)

// Settings holds the merged configuration.
type Settings struct {
	Banner     string `yaml:"banner,omitempty"`
	Marker     string `yaml:"marker,omitempty"`
	ShowBanner *bool  `yaml:"show_banner,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	show := true
	return &Settings{
		Banner:     DefaultBanner,
		Marker:     DefaultMarker,
		ShowBanner: &show,
	}
}

// Load returns the defaults overridden by the YAML file at path. An
// empty path means defaults only; a path that cannot be read is an error.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Defaults(), nil
	}

	file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	merged := merge(Defaults(), file)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero override values onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Banner != "" {
		result.Banner = override.Banner
	}
	if override.Marker != "" {
		result.Marker = override.Marker
	}
	if override.ShowBanner != nil {
		show := *override.ShowBanner
		result.ShowBanner = &show
	}

	return &result
}

// Validate checks that the settings can be rendered: the marker must
// occupy exactly one column and the banner must be a single line.
func (s *Settings) Validate() error {
	if w := width.VisibleWidth(s.Marker); w != 1 {
		return fmt.Errorf("marker %q must be one column wide, got %d", s.Marker, w)
	}
	if strings.ContainsAny(s.Banner, "\r\n\x1b") {
		return fmt.Errorf("banner must be a single line without escape sequences")
	}
	return nil
}

// BannerText expands the version placeholder. It returns "" when the
// banner is hidden.
func (s *Settings) BannerText(version string) string {
	if s.ShowBanner != nil && !*s.ShowBanner {
		return ""
	}
	return strings.ReplaceAll(s.Banner, VersionPlaceholder, version)
}
