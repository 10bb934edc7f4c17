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
	"github.com/obramarket/obramarket-api/pkg/normalize"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, title, description, category, quantity, unit, price, condition, location, project_name, images, seller_id, status, featured, created_at, updated_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL
// (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material nuevo.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Title, m.Description, string(m.Category), m.Quantity, string(m.Unit),
		m.Price, string(m.Condition), m.Location, m.ProjectName, m.Images,
		m.SellerID, string(m.Status), m.Featured, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtiene el material bloqueando su fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *MaterialRepo) GetByIDForUpdate(id string) (*entity.Material, error) {
	return r.getByID(id, true)
}

func (r *MaterialRepo) getByID(id string, forUpdate bool) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Title, &m.Description, &m.Category, &m.Quantity, &m.Unit,
		&m.Price, &m.Condition, &m.Location, &m.ProjectName, &m.Images,
		&m.SellerID, &m.Status, &m.Featured, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update actualiza un material existente (incluye status y quantity: el libro
// de disponibilidad persiste por aquí).
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials SET title = $2, description = $3, category = $4, quantity = $5,
			unit = $6, price = $7, condition = $8, location = $9, project_name = $10,
			images = $11, status = $12, featured = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Title, m.Description, string(m.Category), m.Quantity, string(m.Unit),
		m.Price, string(m.Condition), m.Location, m.ProjectName, m.Images,
		string(m.Status), m.Featured, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materiales con filtros y paginación, devolviendo también el total.
// La búsqueda de texto compara sin tildes ni mayúsculas (unaccent).
func (r *MaterialRepo) List(filter repository.MaterialFilter, limit, offset int) ([]*entity.Material, int, error) {
	where, args := buildMaterialWhere(filter)

	countQuery := `SELECT COUNT(*) FROM materials` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materials: %w", err)
	}

	query := `SELECT ` + materialColumns + ` FROM materials` + where +
		` ORDER BY featured DESC, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	list, err := scanMaterials(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListBySeller lista todos los materiales de un vendedor, más recientes primero.
func (r *MaterialRepo) ListBySeller(sellerID string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE seller_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list materials by seller: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func buildMaterialWhere(filter repository.MaterialFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.Category != "" {
		add("category = ?", string(filter.Category))
	}
	if filter.Status != "" {
		add("status = ?", string(filter.Status))
	}
	if filter.Condition != "" {
		add("condition = ?", string(filter.Condition))
	}
	if filter.SellerID != "" {
		add("seller_id = ?", filter.SellerID)
	}
	if filter.MinPrice != nil {
		add("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured != nil {
		add("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		term := "%" + normalize.Term(filter.Search) + "%"
		args = append(args, term)
		n := "$" + strconv.Itoa(len(args))
		conds = append(conds, "(unaccent(lower(title)) LIKE "+n+" OR unaccent(lower(description)) LIKE "+n+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.Category, &m.Quantity, &m.Unit,
			&m.Price, &m.Condition, &m.Location, &m.ProjectName, &m.Images,
			&m.SellerID, &m.Status, &m.Featured, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
