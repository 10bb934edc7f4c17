package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, buyer_id, seller_id, material_id, quantity, unit_price, total_price, status, delivery_date, buyer_notes, seller_notes, created_at, updated_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx). Sin Delete: las transacciones son
// registro de auditoría.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción nueva.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.BuyerID, t.SellerID, t.MaterialID, t.Quantity, t.UnitPrice,
		t.TotalPrice, string(t.Status), t.DeliveryDate, t.BuyerNotes, t.SellerNotes,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.BuyerID, &t.SellerID, &t.MaterialID, &t.Quantity, &t.UnitPrice,
		&t.TotalPrice, &t.Status, &t.DeliveryDate, &t.BuyerNotes, &t.SellerNotes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update actualiza estado, notas, fecha de entrega y total de una transacción.
func (r *TransactionRepo) Update(t *entity.Transaction) error {
	query := `
		UPDATE transactions SET quantity = $2, unit_price = $3, total_price = $4,
			status = $5, delivery_date = $6, buyer_notes = $7, seller_notes = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Quantity, t.UnitPrice, t.TotalPrice, string(t.Status),
		t.DeliveryDate, t.BuyerNotes, t.SellerNotes, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// List lista las transacciones del usuario según su rol en ellas, con
// paginación y total.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, int, error) {
	var conds []string
	var args []any

	switch filter.Role {
	case "buyer":
		args = append(args, filter.UserID)
		conds = append(conds, "buyer_id = $"+strconv.Itoa(len(args)))
	case "seller":
		args = append(args, filter.UserID)
		conds = append(conds, "seller_id = $"+strconv.Itoa(len(args)))
	default:
		args = append(args, filter.UserID)
		n := "$" + strconv.Itoa(len(args))
		conds = append(conds, "(buyer_id = "+n+" OR seller_id = "+n+")")
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where +
		` ORDER BY created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.BuyerID, &t.SellerID, &t.MaterialID, &t.Quantity, &t.UnitPrice,
			&t.TotalPrice, &t.Status, &t.DeliveryDate, &t.BuyerNotes, &t.SellerNotes,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

// StatsByUser agrupa por estado las transacciones del usuario en el rol dado.
func (r *TransactionRepo) StatsByUser(userID, role string) ([]repository.StatusCount, error) {
	column := "buyer_id"
	if role == "seller" {
		column = "seller_id"
	}
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM transactions WHERE ` + column + ` = $1 GROUP BY status`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("stats transactions: %w", err)
	}
	defer rows.Close()

	var stats []repository.StatusCount
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, c)
	}
	return stats, rows.Err()
}
