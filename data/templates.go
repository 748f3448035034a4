package data

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTemplate is returned for entity templates missing required fields
var ErrInvalidTemplate = errors.New("invalid entity template")

// Template kinds
const (
	KindPlayer = "player"
	KindEnemy  = "enemy"
)

// EntityTemplate describes an entity placed into the world at startup
type EntityTemplate struct {
	// Basic info
	ID   string `yaml:"id"`   // Unique identifier
	Kind string `yaml:"kind"` // "player" or "enemy"
	Name string `yaml:"name"` // Display name

	// Placement and size in pixels
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`

	Speed  float32 `yaml:"speed"`  // Pixels per second
	Color  string  `yaml:"color"`  // Color in hex format (e.g. "#00FF00")
	Damage int32   `yaml:"damage"` // Enemies only
}

// TemplateFile is the on-disk layout of a template document
type TemplateFile struct {
	Entities []EntityTemplate `yaml:"entities"`
}

// DefaultTemplates reproduces the starting world: one player and the enemy Steve-o
func DefaultTemplates() []EntityTemplate {
	return []EntityTemplate{
		{
			ID:     "player-left",
			Kind:   KindPlayer,
			Name:   "Player",
			X:      10,
			Y:      10,
			Width:  10,
			Height: 10,
			Speed:  100,
			Color:  "#FFFFFF",
		},
		{
			ID:     "steve-o",
			Kind:   KindEnemy,
			Name:   "Steve-o",
			X:      100,
			Y:      100,
			Width:  10,
			Height: 10,
			Speed:  10,
			Color:  "#E62937",
			Damage: 32,
		},
	}
}

// LoadTemplatesFromFile loads templates from a YAML file. A missing file yields the defaults.
func LoadTemplatesFromFile(path string) ([]EntityTemplate, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultTemplates(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open templates %s", path)
	}
	defer f.Close()

	templates, err := DecodeTemplates(f)
	if err != nil {
		return nil, errors.Wrapf(err, "templates %s", path)
	}
	return templates, nil
}

// DecodeTemplates reads and validates a YAML template document
func DecodeTemplates(r io.Reader) ([]EntityTemplate, error) {
	var file TemplateFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(ErrInvalidTemplate, "decode: %v", err)
	}

	seen := make(map[string]struct{}, len(file.Entities))
	for i := range file.Entities {
		template := &file.Entities[i]
		if err := ValidateTemplate(template); err != nil {
			return nil, err
		}
		if _, dup := seen[template.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidTemplate, "duplicate id %q", template.ID)
		}
		seen[template.ID] = struct{}{}
	}
	return file.Entities, nil
}

// ValidateTemplate ensures that the template has all required fields
func ValidateTemplate(template *EntityTemplate) error {
	if template.ID == "" {
		return errors.Wrap(ErrInvalidTemplate, "missing id")
	}
	switch template.Kind {
	case KindPlayer, KindEnemy:
	default:
		return errors.Wrapf(ErrInvalidTemplate, "template '%s' has unknown kind %q", template.ID, template.Kind)
	}
	if template.Width <= 0 || template.Height <= 0 {
		return errors.Wrapf(ErrInvalidTemplate, "template '%s' has size %vx%v", template.ID, template.Width, template.Height)
	}
	if template.Speed < 0 {
		return errors.Wrapf(ErrInvalidTemplate, "template '%s' has negative speed", template.ID)
	}
	if template.Kind == KindEnemy && template.Name == "" {
		return errors.Wrapf(ErrInvalidTemplate, "enemy template '%s' missing name", template.ID)
	}
	return nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
