package access

import "github.com/BruksfildServices01/softbarber/internal/models"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleBarbero Role = models.RoleBarbero
	RoleAdmin   Role = models.RoleAdmin
)

func (r Role) Valid() bool {
	return r == RoleBarbero || r == RoleAdmin
}

// ParseRole returns RoleBarbero for an empty string.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleBarbero, true
	}
	r := Role(s)
	return r, r.Valid()
}

// ===============================
// Identity
// ===============================

type Identity struct {
	UserID uint
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// ===============================
// Views
// ===============================

type View string

const (
	ViewDashboard    View = "dashboard"
	ViewAppointments View = "appointments"
	ViewClients      View = "clients"
	ViewCuts         View = "cuts"
	ViewMyStats      View = "my-stats"
	ViewStats        View = "stats"
	ViewBarbers      View = "barbers"
	ViewAuditLogs    View = "audit-logs"
)

var (
	sharedViews = []View{
		ViewDashboard,
		ViewAppointments,
		ViewClients,
		ViewCuts,
		ViewMyStats,
	}

	adminViews = []View{
		ViewStats,
		ViewBarbers,
		ViewAuditLogs,
	}
)

// ViewsFor lists the screens a role may open. Unknown roles get nothing.
func ViewsFor(role Role) []View {
	switch role {
	case RoleBarbero:
		return append([]View(nil), sharedViews...)
	case RoleAdmin:
		out := make([]View, 0, len(sharedViews)+len(adminViews))
		out = append(out, sharedViews...)
		return append(out, adminViews...)
	}
	return []View{}
}

func CanView(role Role, v View) bool {
	for _, allowed := range ViewsFor(role) {
		if allowed == v {
			return true
		}
	}
	return false
}

// ===============================
// Scoping
// ===============================

// ScopeBarber returns the barber filter a query must apply. A barbero is
// always pinned to self; an admin keeps the requested filter, nil meaning
// every barber.
func ScopeBarber(id Identity, requested *uint) *uint {
	if !id.IsAdmin() {
		self := id.UserID
		return &self
	}
	if requested == nil || *requested == 0 {
		return nil
	}
	v := *requested
	return &v
}
