// internal/inventory/repository.go
package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository is the storage collaborator for food records. FetchAll must
// return items in insertion order; the views rely on that for stable sorts.
type Repository interface {
	FetchAll(ctx context.Context) ([]*Food, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*Food, error)
	Save(ctx context.Context, food *Food) (*Food, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FetchByNameContaining(ctx context.Context, name string) ([]*Food, error)
	FetchByCategory(ctx context.Context, category string) ([]*Food, error)
}

// postgresRepository is the production read model.
type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a Repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const foodColumns = `id, name, quantity, unit, expiry_date, added_date, category, donated, donated_date, version`

func scanFood(row interface{ Scan(...interface{}) error }) (*Food, error) {
	food := &Food{}
	var donatedDate sql.NullTime
	err := row.Scan(
		&food.ID,
		&food.Name,
		&food.Quantity,
		&food.Unit,
		&food.ExpiryDate,
		&food.AddedDate,
		&food.Category,
		&food.Donated,
		&donatedDate,
		&food.Version,
	)
	if err != nil {
		return nil, err
	}
	if donatedDate.Valid {
		d := donatedDate.Time
		food.DonatedDate = &d
	}
	return food, nil
}

func (r *postgresRepository) queryFoods(ctx context.Context, query string, args ...interface{}) ([]*Food, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	var foods []*Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return foods, nil
}

func (r *postgresRepository) FetchAll(ctx context.Context) ([]*Food, error) {
	return r.queryFoods(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		ORDER BY pos ASC
	`)
}

func (r *postgresRepository) FetchByID(ctx context.Context, id uuid.UUID) (*Food, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		WHERE id = $1
	`, id)

	food, err := scanFood(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return food, nil
}

// Save inserts the record on first save, assigning its identity, and
// otherwise updates it in place.
func (r *postgresRepository) Save(ctx context.Context, food *Food) (*Food, error) {
	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}

	exists, err := r.ExistsByID(ctx, food.ID)
	if err != nil {
		return nil, err
	}

	if !exists {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO foods (id, name, quantity, unit, expiry_date, added_date, category, donated, donated_date, version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, food.ID, food.Name, food.Quantity, food.Unit, food.ExpiryDate, food.AddedDate, food.Category, food.Donated, food.DonatedDate, food.Version)
		if err != nil {
			return nil, fmt.Errorf("insert food: %w", err)
		}
		return food, nil
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE foods
		SET name = $1, quantity = $2, unit = $3, expiry_date = $4, added_date = $5,
		    category = $6, donated = $7, donated_date = $8, version = $9
		WHERE id = $10
	`, food.Name, food.Quantity, food.Unit, food.ExpiryDate, food.AddedDate, food.Category, food.Donated, food.DonatedDate, food.Version, food.ID)
	if err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}
	return food, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete food: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete food: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM foods WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check food exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) FetchByNameContaining(ctx context.Context, name string) ([]*Food, error) {
	return r.queryFoods(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY pos ASC
	`, name)
}

// FetchByCategory matches the category exactly, case included.
func (r *postgresRepository) FetchByCategory(ctx context.Context, category string) ([]*Food, error) {
	return r.queryFoods(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		WHERE category = $1
		ORDER BY pos ASC
	`, category)
}
