// Package security traduce roles a capacidades. La verificación se hace una sola vez,
// en el borde HTTP, nunca con condicionales por pantalla.
package security

import (
	"sort"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Capability operación protegida.
type Capability string

const (
	CapSell             Capability = "pos.sell"
	CapProductsRead     Capability = "products.read"
	CapProductsWrite    Capability = "products.write"
	CapInventoryRead    Capability = "inventory.read"
	CapInventoryAdjust  Capability = "inventory.adjust"
	CapSalesRead        Capability = "sales.read"
	CapReportsRead      Capability = "reports.read"
	CapCustomersManage  Capability = "customers.manage"
	CapUsersManage      Capability = "users.manage"
	CapCategoriesManage Capability = "categories.manage"
)

// Policy mapa rol -> capacidades permitidas.
type Policy map[string]map[Capability]struct{}

func set(caps ...Capability) map[Capability]struct{} {
	m := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		m[c] = struct{}{}
	}
	return m
}

// DefaultPolicy matriz del POS: admin todo; manager todo menos ajustes del sistema;
// cashier solo vende y consulta productos.
func DefaultPolicy() Policy {
	cashier := []Capability{CapSell, CapProductsRead}
	manager := append(append([]Capability{}, cashier...),
		CapProductsWrite, CapInventoryRead, CapInventoryAdjust,
		CapSalesRead, CapReportsRead, CapCustomersManage)
	admin := append(append([]Capability{}, manager...), CapUsersManage, CapCategoriesManage)
	return Policy{
		entity.RoleAdmin:   set(admin...),
		entity.RoleManager: set(manager...),
		entity.RoleCashier: set(cashier...),
	}
}

// Allows indica si el rol tiene la capacidad. Rol desconocido: nada.
func (p Policy) Allows(role string, c Capability) bool {
	_, ok := p[role][c]
	return ok
}

// Check devuelve ErrForbidden si el rol no tiene la capacidad.
func (p Policy) Check(role string, c Capability) error {
	if !p.Allows(role, c) {
		return domain.ErrForbidden
	}
	return nil
}

// Capabilities lista ordenada de capacidades del rol (para /api/auth/me).
func (p Policy) Capabilities(role string) []string {
	out := make([]string, 0, len(p[role]))
	for c := range p[role] {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}
