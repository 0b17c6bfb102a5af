// Package decor implements the server-side decorations that kumo
// draws around client windows.
package decor

import "iter"

// Role identifies one of the buttons in a TopBar. Roles are ordered,
// and that order is used both when hit testing and when rendering.
type Role int

const (
	RoleScreenshot Role = iota
	RolePresetWidth
	RoleClose
	RoleMinimize
	RoleMaximize

	// NumRoles is the number of valid roles.
	NumRoles
)

func (r Role) String() string {
	switch r {
	case RoleScreenshot:
		return "screenshot"
	case RolePresetWidth:
		return "preset-width"
	case RoleClose:
		return "close"
	case RoleMinimize:
		return "minimize"
	case RoleMaximize:
		return "maximize"
	default:
		return "invalid"
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return (r >= 0) && (r < NumRoles)
}

// Roles yields every role in ascending order.
func Roles() iter.Seq[Role] {
	return func(yield func(Role) bool) {
		for r := Role(0); r < NumRoles; r++ {
			if !yield(r) {
				return
			}
		}
	}
}
