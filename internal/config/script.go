package config

import "github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"

// Operation names accepted in scripts.
const (
	OpAdd       = "add"
	OpRemove    = "remove"
	OpUpdate    = "update"
	OpMove      = "move"
	OpDrop      = "drop"
	OpUndo      = "undo"
	OpRedo      = "redo"
	OpSelect    = "select"
	OpRandomize = "randomize"
	OpSetColor  = "set_color"
	OpSiteType  = "site_type"
	OpRadius    = "radius"
	OpShadow    = "shadow"
	OpFonts     = "fonts"
	OpEffect    = "effect"
)

// Script is a batch of editing operations applied in order to a project.
type Script struct {
	Version string `yaml:"version" validate:"required,oneof=1 1.0"`
	Name    string `yaml:"name"`
	Ops     []Op   `yaml:"ops" validate:"required,min=1,dive"`
}

// Op is one scripted operation. Which fields are required depends on Op.
type Op struct {
	Op       string         `yaml:"op" validate:"required,script_op"`
	ID       string         `yaml:"id,omitempty"`
	Type     string         `yaml:"type,omitempty"`
	Area     string         `yaml:"area,omitempty"`
	Index    *int           `yaml:"index,omitempty"`
	Over     string         `yaml:"over,omitempty"`
	Label    *string        `yaml:"label,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
	Role     string         `yaml:"role,omitempty" validate:"omitempty,theme_role"`
	Hex      string         `yaml:"hex,omitempty" validate:"omitempty,hexcolor"`
	Locks    []string       `yaml:"locks,omitempty" validate:"omitempty,dive,theme_role"`
	SiteType string         `yaml:"site_type,omitempty" validate:"omitempty,site_type"`
	Value    string         `yaml:"value,omitempty"`
	Heading  string         `yaml:"heading,omitempty" validate:"omitempty,font"`
	Body     string         `yaml:"body,omitempty" validate:"omitempty,font"`

	// Effect replaces the whole background effect descriptor.
	Effect *theme.BackgroundEffect `yaml:"effect,omitempty"`

	// Line is the 1-based line of the op in its source file, or 0.
	Line int `yaml:"-"`
}
