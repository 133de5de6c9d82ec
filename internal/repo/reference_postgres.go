package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	models "github.com/rmoran/stocktrack/internal/models"
)

const uniqueViolationCode = "23505"

type PostgresReferenceRepository struct {
	db    *sql.DB
	table string
}

func NewPostgresSupplierRepository(db *sql.DB) *PostgresReferenceRepository {
	return &PostgresReferenceRepository{db: db, table: "suppliers"}
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresReferenceRepository {
	return &PostgresReferenceRepository{db: db, table: "categories"}
}

func (r *PostgresReferenceRepository) FindOrCreate(name string) (models.Reference, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ref, err := r.findByName(ctx, name)
	if err == nil {
		return ref, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Reference{}, err
	}

	insert := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, r.table)
	ref = models.Reference{Name: name}
	err = r.db.QueryRowContext(ctx, insert, name).Scan(&ref.ID)
	if err == nil {
		return ref, nil
	}

	// A concurrent insert of the same name wins the unique constraint;
	// re-read once and return the winner.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		ref, err = r.findByName(ctx, name)
		if err != nil {
			return models.Reference{}, ErrDuplicateName
		}
		return ref, nil
	}
	return models.Reference{}, err
}

func (r *PostgresReferenceRepository) findByName(ctx context.Context, name string) (models.Reference, error) {
	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE name = $1`, r.table)
	var ref models.Reference
	err := r.db.QueryRowContext(ctx, query, name).Scan(&ref.ID, &ref.Name)
	return ref, err
}

func (r *PostgresReferenceRepository) All() ([]models.Reference, error) {
	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, r.table)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []models.Reference{}
	for rows.Next() {
		var ref models.Reference
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
