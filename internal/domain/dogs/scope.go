package dogs

import "dog-walking-app/internal/domain/access"

// Capa de scoping: traduce decisiones de policy a filtros de storage.
// Los services usan SIEMPRE estos filtros, nunca uno armado por el cliente.

// ListFilter deriva el filtro de listado para un principal.
// Solo un admin que pide "all" explícitamente lista sin restricción de owner;
// el default es owner-scoped incluso para admins.
func ListFilter(p access.Principal, all bool) Filter {
	f := Filter{ActiveOnly: true}
	if all && access.CanListAllDogs(p) {
		return f
	}
	f.OwnerID = p.ID
	return f
}

// MutateFilter deriva el filtro para get/update/delete de un dog puntual:
// {id} intersectado con {ownerId=caller}, salvo admin que pierde la segunda
// pata. Un filtro que no matchea nada se reporta como NotFound, nunca como
// Forbidden: no confirmamos existencia a quien no tiene acceso.
func MutateFilter(p access.Principal, dogID string) Filter {
	f := Filter{ID: dogID}
	if !access.IsAdmin(p) {
		f.OwnerID = p.ID
	}
	return f
}
