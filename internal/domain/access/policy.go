package access

import "strings"

// Role define el nivel de acceso por defecto de un usuario.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
	RoleAdmin  Role = "admin"
)

// ValidRole valida que el rol sea uno de los soportados.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleWalker, RoleAdmin:
		return true
	}
	return false
}

// Principal es la identidad ya autenticada de un request.
// El Role viene SIEMPRE del registro vivo en storage (re-fetch por request),
// nunca del token: un cambio de rol o un borrado de cuenta aplica de inmediato.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// IsAdmin responde si el principal tiene privilegio total.
func IsAdmin(p Principal) bool {
	return p.Role == RoleAdmin
}

// IsSelf responde si el principal actúa sobre su propio registro / recurso.
func IsSelf(p Principal, targetOwnerID string) bool {
	return p.ID != "" && p.ID == strings.TrimSpace(targetOwnerID)
}

// CanAccessAdminOrSelf: admin siempre; self solo para los paths de
// lectura/update/delete de un registro puntual. Nunca para listados
// globales ni para mutar roles.
func CanAccessAdminOrSelf(p Principal, targetOwnerID string) bool {
	return IsAdmin(p) || IsSelf(p, targetOwnerID)
}

// CanMutateRole: solo un admin puede cambiar el campo role de un usuario.
// Un request no-admin que incluya un cambio de role se rechaza completo,
// aunque el resto de los campos sean un self-update legal.
func CanMutateRole(p Principal) bool {
	return IsAdmin(p)
}

// CanDeleteUser: admin y nunca sobre sí mismo.
func CanDeleteUser(p Principal, targetID string) bool {
	return IsAdmin(p) && !IsSelf(p, targetID)
}

// CanListAllUsers: el listado de usuarios es admin-only.
func CanListAllUsers(p Principal) bool {
	return IsAdmin(p)
}

// CanListAllDogs: ampliar el listado de dogs más allá de los propios
// requiere admin (y además opt-in explícito, ver dogs.ListFilter).
func CanListAllDogs(p Principal) bool {
	return IsAdmin(p)
}
