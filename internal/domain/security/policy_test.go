package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/security"
)

func TestDefaultPolicy_Matriz(t *testing.T) {
	p := security.DefaultPolicy()
	all := []security.Capability{
		security.CapSell, security.CapProductsRead, security.CapProductsWrite,
		security.CapInventoryRead, security.CapInventoryAdjust, security.CapSalesRead,
		security.CapReportsRead, security.CapCustomersManage, security.CapUsersManage,
		security.CapCategoriesManage,
	}
	for _, c := range all {
		assert.True(t, p.Allows(entity.RoleAdmin, c), "admin %s", c)
	}

	assert.True(t, p.Allows(entity.RoleManager, security.CapInventoryAdjust))
	assert.True(t, p.Allows(entity.RoleManager, security.CapReportsRead))
	assert.False(t, p.Allows(entity.RoleManager, security.CapUsersManage))
	assert.False(t, p.Allows(entity.RoleManager, security.CapCategoriesManage))

	assert.True(t, p.Allows(entity.RoleCashier, security.CapSell))
	assert.True(t, p.Allows(entity.RoleCashier, security.CapProductsRead))
	assert.False(t, p.Allows(entity.RoleCashier, security.CapProductsWrite))
	assert.False(t, p.Allows(entity.RoleCashier, security.CapInventoryAdjust))
	assert.Equal(t, []string{"pos.sell", "products.read"}, p.Capabilities(entity.RoleCashier))
}

func TestPolicy_RolDesconocido(t *testing.T) {
	p := security.DefaultPolicy()
	assert.False(t, p.Allows("guest", security.CapSell))
	assert.ErrorIs(t, p.Check("guest", security.CapSell), domain.ErrForbidden)
	assert.NoError(t, p.Check(entity.RoleCashier, security.CapSell))
	assert.Empty(t, p.Capabilities(""))
}
