package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	"github.com/alexisbeaulieu97/gridsmith/pkg/diff"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatCSS}

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected json, yaml or css)", s)
	}
}

// Typography is the exported font pairing with resolved CSS stacks.
type Typography struct {
	HeadingFont  string `json:"headingFont" yaml:"heading_font"`
	BodyFont     string `json:"bodyFont" yaml:"body_font"`
	HeadingStack string `json:"headingStack" yaml:"heading_stack"`
	BodyStack    string `json:"bodyStack" yaml:"body_stack"`
}

// Theme is the exported theme without typography, which is exported on its own.
type Theme struct {
	Colors color.Palette          `json:"colors" yaml:"colors"`
	Radius theme.Radius           `json:"radius" yaml:"radius"`
	Shadow theme.Shadow           `json:"shadow" yaml:"shadow"`
	Effect theme.BackgroundEffect `json:"effect" yaml:"effect"`
}

// Document is the exported view of a design.
type Document struct {
	Meta       studio.Meta            `json:"meta" yaml:"meta"`
	Theme      Theme                  `json:"theme" yaml:"theme"`
	Typography Typography             `json:"typography" yaml:"typography"`
	Layout     layout.Layout          `json:"layout" yaml:"layout"`
	Parts      map[string]design.Part `json:"parts" yaml:"parts"`
}

// Build assembles the export view from a session snapshot.
func Build(m studio.ReadModel) Document {
	parts := m.Parts
	if parts == nil {
		parts = map[string]design.Part{}
	}
	return Document{
		Meta: m.Meta,
		Theme: Theme{
			Colors: m.Theme.Colors,
			Radius: m.Theme.Radius,
			Shadow: m.Theme.Shadow,
			Effect: m.Theme.Effect,
		},
		Typography: Typography{
			HeadingFont:  m.Theme.Typography.HeadingFont,
			BodyFont:     m.Theme.Typography.BodyFont,
			HeadingStack: fontStack(m.Theme.Typography.HeadingFont),
			BodyStack:    fontStack(m.Theme.Typography.BodyFont),
		},
		Layout: m.Layout,
		Parts:  parts,
	}
}

// Render encodes the snapshot in format.
func Render(m studio.ReadModel, format Format) ([]byte, error) {
	doc := Build(m)
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatCSS:
		var buf bytes.Buffer
		if err := cssTemplate.Execute(&buf, doc); err != nil {
			return nil, fmt.Errorf("failed to render css: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

func fontStack(id string) string {
	if f, ok := theme.LookupFont(id); ok {
		return f.Stack()
	}
	return "sans-serif"
}

var cssTemplate = template.Must(template.New("css").Funcs(template.FuncMap{
	"radius": func(r theme.Radius) string { return r.CSS() },
	"shadow": func(s theme.Shadow) string { return s.CSS() },
}).Parse(`/* {{ .Meta.Name }} ({{ .Layout.SiteType }}) */
:root {
  --color-background: {{ .Theme.Colors.Background }};
  --color-text: {{ .Theme.Colors.Text }};
  --color-primary: {{ .Theme.Colors.Primary }};
  --color-secondary: {{ .Theme.Colors.Secondary }};
  --color-accent: {{ .Theme.Colors.Accent }};
  --color-surface: {{ .Theme.Colors.Surface }};
  --radius: {{ radius .Theme.Radius }};
  --shadow: {{ shadow .Theme.Shadow }};
  --font-heading: {{ .Typography.HeadingStack }};
  --font-body: {{ .Typography.BodyStack }};
}

.layout {
  display: grid;
  grid-template-areas:
    {{ .Layout.Grid.TemplateAreasCSS }};
  grid-template-columns: {{ .Layout.Grid.ColumnsCSS }};
  grid-template-rows: {{ .Layout.Grid.RowsCSS }};
  gap: {{ .Layout.Grid.Gap }};
}
{{ range .Layout.Areas }}
.area-{{ .ID }} {
  grid-area: {{ .GridArea }};
}
{{ end -}}
`))

// DiffAgainst renders the snapshot and compares it with previous, typically
// the contents of an earlier export. It returns "" when nothing changed.
func DiffAgainst(previous []byte, label string, m studio.ReadModel, format Format) (string, error) {
	current, err := Render(m, format)
	if err != nil {
		return "", err
	}
	return diff.GenerateUnifiedDiff(previous, current, label, label+" (current)"), nil
}
