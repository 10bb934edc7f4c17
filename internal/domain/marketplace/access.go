// Package marketplace contiene las reglas puras del marketplace: el predicado
// de control de acceso, el libro de disponibilidad de materiales y la máquina
// de estados de transacciones. No toca persistencia ni HTTP.
package marketplace

import "github.com/obramarket/obramarket-api/internal/domain/entity"

// CanAct decide si un actor puede mutar un recurso ajeno: debe ser su dueño o
// admin. Sin efectos secundarios; el que llama traduce false a 403.
func CanAct(actorID, actorRole, ownerID string) bool {
	return actorID == ownerID || actorRole == entity.RoleAdmin
}

// IsParty decide si un actor participa en una transacción (comprador,
// vendedor o admin). Gobierna lectura y cambio de estado de transacciones.
func IsParty(actorID, actorRole string, tx *entity.Transaction) bool {
	return actorID == tx.BuyerID || actorID == tx.SellerID || actorRole == entity.RoleAdmin
}
