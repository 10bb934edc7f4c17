package marketplace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
)

func TestCanAct_DuenoYAdmin(t *testing.T) {
	assert.True(t, marketplace.CanAct("u1", entity.RoleUser, "u1"), "el dueño puede actuar")
	assert.True(t, marketplace.CanAct("u2", entity.RoleAdmin, "u1"), "un admin puede actuar sobre recurso ajeno")
	assert.False(t, marketplace.CanAct("u2", entity.RoleUser, "u1"), "un tercero no puede actuar")
}

func TestIsParty_CompradorVendedorYAdmin(t *testing.T) {
	tx := &entity.Transaction{BuyerID: "buyer-1", SellerID: "seller-1"}

	assert.True(t, marketplace.IsParty("buyer-1", entity.RoleUser, tx))
	assert.True(t, marketplace.IsParty("seller-1", entity.RoleUser, tx))
	assert.True(t, marketplace.IsParty("admin-1", entity.RoleAdmin, tx))
	assert.False(t, marketplace.IsParty("otro", entity.RoleUser, tx))
}
