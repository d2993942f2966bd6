package color

import (
	"fmt"
	"sort"
	"strings"
)

// Role is one of the six semantic theme color slots.
type Role string

const (
	RoleBackground Role = "background"
	RoleText       Role = "text"
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleSurface    Role = "surface"
)

// Roles lists every semantic role in display order.
var Roles = []Role{RoleBackground, RoleText, RolePrimary, RoleSecondary, RoleAccent, RoleSurface}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	candidate := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range Roles {
		if r == candidate {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown color role %q", s)
}

// Palette holds the six semantic theme colors as #rrggbb strings.
type Palette struct {
	Background string `yaml:"background" json:"background" validate:"required,hexcolor"`
	Text       string `yaml:"text" json:"text" validate:"required,hexcolor"`
	Primary    string `yaml:"primary" json:"primary" validate:"required,hexcolor"`
	Secondary  string `yaml:"secondary" json:"secondary" validate:"required,hexcolor"`
	Accent     string `yaml:"accent" json:"accent" validate:"required,hexcolor"`
	Surface    string `yaml:"surface" json:"surface" validate:"required,hexcolor"`
}

// Get returns the color assigned to role.
func (p Palette) Get(role Role) string {
	switch role {
	case RoleBackground:
		return p.Background
	case RoleText:
		return p.Text
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleAccent:
		return p.Accent
	case RoleSurface:
		return p.Surface
	default:
		return ""
	}
}

// With returns a copy of the palette with role set to hex.
func (p Palette) With(role Role, hex string) Palette {
	switch role {
	case RoleBackground:
		p.Background = hex
	case RoleText:
		p.Text = hex
	case RolePrimary:
		p.Primary = hex
	case RoleSecondary:
		p.Secondary = hex
	case RoleAccent:
		p.Accent = hex
	case RoleSurface:
		p.Surface = hex
	}
	return p
}

// Locks is the set of roles protected from randomization.
type Locks map[Role]bool

// NewLocks builds a lock set from roles.
func NewLocks(roles ...Role) Locks {
	locks := make(Locks, len(roles))
	for _, r := range roles {
		locks[r] = true
	}
	return locks
}

// Has reports whether role is locked.
func (l Locks) Has(role Role) bool {
	return l[role]
}

// Roles returns the locked roles in display order.
func (l Locks) Roles() []Role {
	out := make([]Role, 0, len(l))
	for _, r := range Roles {
		if l[r] {
			out = append(out, r)
		}
	}
	return out
}

// Clone copies the lock set, dropping false entries.
func (l Locks) Clone() Locks {
	out := make(Locks, len(l))
	for r, locked := range l {
		if locked {
			out[r] = true
		}
	}
	return out
}

// String renders the locked roles as a sorted comma separated list.
func (l Locks) String() string {
	names := make([]string, 0, len(l))
	for r, locked := range l {
		if locked {
			names = append(names, string(r))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
