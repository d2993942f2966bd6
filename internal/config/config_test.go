package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadSettingsFromFile(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "gridsmith.yaml", `history_depth: 20
site_type: shop
log_level: debug
default_theme:
  heading_font: lora
  radius: lg
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 20, s.HistoryDepth)
	require.Equal(t, layout.SiteEcommerce, s.ParsedSiteType())
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, "design.gridsmith.yaml", s.Project)

	th := s.Theme()
	require.Equal(t, "lora", th.Typography.HeadingFont)
	require.Equal(t, theme.DefaultFont, th.Typography.BodyFont)
	require.Equal(t, theme.RadiusLG, th.Radius)
	require.Equal(t, theme.ShadowSM, th.Shadow)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("GRIDSMITH_HISTORY_DEPTH", "7")
	t.Setenv("GRIDSMITH_DEFAULT_THEME_SHADOW", "lg")

	path := writeTempFile(t, "gridsmith.yaml", "site_type: blog\n")
	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 7, s.HistoryDepth)
	require.Equal(t, "lg", s.DefaultTheme.Shadow)
	require.Equal(t, layout.SiteBlog, s.ParsedSiteType())
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"history_depth": "history_depth: 0\n",
		"site_type":     "site_type: spaceship\n",
		"heading_font":  "default_theme:\n  heading_font: papyrus\n",
		"log_level":     "log_level: loud\n",
	}
	for field, contents := range cases {
		field, contents := field, contents
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			_, err := LoadSettings(writeTempFile(t, "gridsmith.yaml", contents))
			var validationErr *gridsmitherrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Field, field)
		})
	}
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *gridsmitherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "ops.yaml", `version: "1"
name: seed
ops:
  - op: site_type
    site_type: blog
  - op: add
    id: title
    type: heading
    area: mainContent
  - op: move
    id: title
    area: sidebar
    index: 0
  - op: set_color
    role: primary
    hex: "#E11D48"
  - op: randomize
    locks: [primary, background]
  - op: undo
  - op: effect
    effect:
      type: aurora
      enabled: true
      animated: true
      color_mode: theme
      intensity: 0.8
      speed: 2
`)

	script, err := ParseScript(path)
	require.NoError(t, err)
	require.Equal(t, "seed", script.Name)
	require.Len(t, script.Ops, 7)
	require.Equal(t, OpAdd, script.Ops[1].Op)
	require.Equal(t, 6, script.Ops[1].Line)
	require.NotNil(t, script.Ops[2].Index)
	require.Equal(t, 0, *script.Ops[2].Index)
	require.Equal(t, []string{"primary", "background"}, script.Ops[4].Locks)
	require.Equal(t, &theme.BackgroundEffect{
		Type: "aurora", Enabled: true, Animated: true, ColorMode: "theme", Intensity: 0.8, Speed: 2,
	}, script.Ops[6].Effect)
}

func TestParseScriptErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml carries line",
			contents: "version: \"1\"\nops:\n  - op: add\n   type: [\n",
			assert: func(t *testing.T, err error) {
				var parseErr *gridsmitherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown op",
			contents: "version: \"1\"\nops:\n  - op: explode\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "script_op")
			},
		},
		{
			name:     "missing op field reports line",
			contents: "version: \"1\"\nops:\n  - op: undo\n  - op: drop\n    id: a\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ops[1].over", validationErr.Field)
				require.Contains(t, validationErr.Message, "line 4")
			},
		},
		{
			name:     "bad hex",
			contents: "version: \"1\"\nops:\n  - op: set_color\n    role: text\n    hex: blue\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hexcolor")
			},
		},
		{
			name:     "bad lock role",
			contents: "version: \"1\"\nops:\n  - op: randomize\n    locks: [border]\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "theme_role")
			},
		},
		{
			name:     "bad radius",
			contents: "version: \"1\"\nops:\n  - op: radius\n    value: huge\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ops[0].value", validationErr.Field)
			},
		},
		{
			name:     "effect op without effect",
			contents: "version: \"1\"\nops:\n  - op: effect\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ops[0].effect", validationErr.Field)
			},
		},
		{
			name:     "empty ops",
			contents: "version: \"1\"\nops: []\n",
			assert: func(t *testing.T, err error) {
				var validationErr *gridsmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "ops")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseScriptBytes("ops.yaml", []byte(tc.contents))
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestValidateTheme(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateTheme(theme.Default()))

	bad := theme.Default()
	bad.Colors.Accent = "orange"
	err := ValidateTheme(bad)
	var validationErr *gridsmitherrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "accent")

	bad = theme.Default()
	bad.Typography.BodyFont = "papyrus"
	require.Error(t, ValidateTheme(bad))
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
