package studio

import (
	"fmt"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/ports"
)

// RandomizeColors regenerates the concept palette and derives new theme
// colors, keeping every role in locks. A nil lock set uses the session locks.
func (s *Service) RandomizeColors(locks color.Locks) color.Result {
	s.mu.Lock()
	if locks == nil {
		locks = s.locks
	}
	result := s.randomizer.Randomize(s.theme.Colors, locks)
	s.theme = s.theme.WithColors(result.Colors)
	s.concept = result.Concept
	s.touch()
	s.mu.Unlock()

	s.log.Debug("colors randomized", logger.Fields{"op": "randomize_colors", "locks": locks.String()})
	s.emit(ports.EventThemeRandomized, map[string]any{"locks": locks.String(), "primary": result.Colors.Primary})
	return result
}

// SetColor assigns hex to role. The color is normalised to #rrggbb.
func (s *Service) SetColor(role color.Role, hex string) error {
	if _, err := color.ParseRole(string(role)); err != nil {
		return err
	}
	normalized, err := color.ParseHex(hex)
	if err != nil {
		s.log.Warn("set color rejected", logger.Fields{"op": "set_color", "role": string(role), "error": err.Error()})
		return err
	}

	s.mu.Lock()
	s.theme = s.theme.WithColors(s.theme.Colors.With(role, normalized))
	s.touch()
	s.mu.Unlock()

	s.log.Debug("color set", logger.Fields{"op": "set_color", "role": string(role), "hex": normalized})
	s.emit(ports.EventThemeColorSet, map[string]any{"role": string(role), "hex": normalized})
	return nil
}

// Locks returns a copy of the session lock set.
func (s *Service) Locks() color.Locks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks.Clone()
}

// SetLocks replaces the session lock set.
func (s *Service) SetLocks(locks color.Locks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks = locks.Clone()
}

// ToggleLock flips the lock on role and reports the new state.
func (s *Service) ToggleLock(role color.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks.Has(role) {
		delete(s.locks, role)
		return false
	}
	s.locks[role] = true
	return true
}

// SetRadius sets the corner radius token.
func (s *Service) SetRadius(r theme.Radius) error {
	parsed, err := theme.ParseRadius(string(r))
	if err != nil {
		return err
	}
	s.updateTheme("radius", string(parsed), func(t *theme.DesignTheme) { t.Radius = parsed })
	return nil
}

// SetShadow sets the shadow token.
func (s *Service) SetShadow(sh theme.Shadow) error {
	parsed, err := theme.ParseShadow(string(sh))
	if err != nil {
		return err
	}
	s.updateTheme("shadow", string(parsed), func(t *theme.DesignTheme) { t.Shadow = parsed })
	return nil
}

// SetFonts sets the heading and body fonts. An empty id leaves that font as is.
func (s *Service) SetFonts(heading, body string) error {
	resolve := func(id string) (string, error) {
		if id == "" {
			return "", nil
		}
		f, ok := theme.LookupFont(id)
		if !ok {
			return "", fmt.Errorf("unknown font %q", id)
		}
		return f.ID, nil
	}
	heading, err := resolve(heading)
	if err != nil {
		return err
	}
	body, err = resolve(body)
	if err != nil {
		return err
	}
	s.updateTheme("fonts", heading+"/"+body, func(t *theme.DesignTheme) {
		if heading != "" {
			t.Typography.HeadingFont = heading
		}
		if body != "" {
			t.Typography.BodyFont = body
		}
	})
	return nil
}

// SetEffect replaces the background effect descriptor.
func (s *Service) SetEffect(effect theme.BackgroundEffect) {
	s.updateTheme("effect", effect.Type, func(t *theme.DesignTheme) { t.Effect = effect })
}

func (s *Service) updateTheme(token, value string, mutate func(*theme.DesignTheme)) {
	s.mu.Lock()
	mutate(&s.theme)
	s.touch()
	s.mu.Unlock()

	s.log.Debug("theme token set", logger.Fields{"op": "set_" + token, "value": value})
	s.emit(ports.EventThemeTokensSet, map[string]any{"token": token, "value": value})
}
