package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	models "github.com/rmoran/stocktrack/internal/models"
)

const itemColumns = `i.id, i.sku, i.item, i.quantity, i.price, i.supplier_id, i.category_id,
	s.name, c.name, i.deleted_at, i.created_at, i.updated_at`

const itemJoins = ` FROM items i
	JOIN suppliers s ON i.supplier_id = s.id
	JOIN categories c ON i.category_id = c.id`

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(item models.Item) (models.Item, error) {
	query := `INSERT INTO items (sku, item, quantity, price, supplier_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, query,
		nullableSKU(item.SKU), item.Name, item.Quantity, item.Price, item.SupplierID, item.CategoryID,
	).Scan(&id)
	if err != nil {
		return models.Item{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoins + ` WHERE i.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresItemRepository) List(filter ItemFilter) ([]models.Item, error) {
	conditions, args := filterConditions(filter)
	query := `SELECT ` + itemColumns + itemJoins + ` WHERE 1=1` + conditions + ` ORDER BY i.created_at DESC, i.id DESC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func filterConditions(filter ItemFilter) (string, []any) {
	query := ""
	argIdx := 1
	args := []any{}

	if filter.Supplier != "" {
		query += fmt.Sprintf(" AND s.name = $%d", argIdx)
		args = append(args, filter.Supplier)
		argIdx++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND c.name = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Query != "" {
		query += fmt.Sprintf(" AND i.item ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}
	if filter.SKU != "" {
		query += fmt.Sprintf(" AND i.sku = $%d", argIdx)
		args = append(args, filter.SKU)
		argIdx++
	}
	if !filter.IncludeDeleted {
		query += " AND i.deleted_at IS NULL"
	}
	return query, args
}

func (r *PostgresItemRepository) Update(id int, patch ItemPatch) (models.Item, error) {
	sets := []string{"updated_at = now()"}
	argIdx := 1
	args := []any{}

	if patch.SKU != nil {
		sets = append(sets, fmt.Sprintf("sku = $%d", argIdx))
		args = append(args, nullableSKU(patch.SKU))
		argIdx++
	}
	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("item = $%d", argIdx))
		args = append(args, *patch.Name)
		argIdx++
	}
	if patch.Quantity != nil {
		sets = append(sets, fmt.Sprintf("quantity = $%d", argIdx))
		args = append(args, *patch.Quantity)
		argIdx++
	}
	if patch.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", argIdx))
		args = append(args, *patch.Price)
		argIdx++
	}
	if patch.SupplierID != nil {
		sets = append(sets, fmt.Sprintf("supplier_id = $%d", argIdx))
		args = append(args, *patch.SupplierID)
		argIdx++
	}
	if patch.CategoryID != nil {
		sets = append(sets, fmt.Sprintf("category_id = $%d", argIdx))
		args = append(args, *patch.CategoryID)
		argIdx++
	}
	if patch.Undelete {
		sets = append(sets, "deleted_at = NULL")
	}

	query := "UPDATE items SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresItemRepository) SoftDelete(id int) error {
	query := `UPDATE items SET deleted_at = now(), updated_at = now() WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) Undelete(id int) (models.Item, error) {
	return r.Update(id, ItemPatch{Undelete: true})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	var sku sql.NullString
	var deletedAt sql.NullTime
	err := row.Scan(&item.ID, &sku, &item.Name, &item.Quantity, &item.Price,
		&item.SupplierID, &item.CategoryID, &item.Supplier, &item.Category,
		&deletedAt, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return models.Item{}, err
	}
	if sku.Valid {
		item.SKU = &sku.String
	}
	if deletedAt.Valid {
		item.DeletedAt = &deletedAt.Time
	}
	return item, nil
}

// nullableSKU maps an absent or empty sku to SQL NULL.
func nullableSKU(sku *string) sql.NullString {
	if sku == nil || *sku == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *sku, Valid: true}
}
