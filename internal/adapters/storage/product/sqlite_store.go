package product

import (
	"context"
	"database/sql"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/product"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const productColumns = `id, name, description, price, image_url, created_at`

// GetByID retrieves a product by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	var p domain.Product
	var description, imageURL sql.NullString
	var createdAt string
	if err := row.Scan(&p.ID, &p.Name, &description, &p.Price, &imageURL, &createdAt); err != nil {
		return domain.Product{}, err
	}
	p.Description = description.String
	p.ImageURL = imageURL.String
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

// Save inserts or updates a product.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, p domain.Product) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description,
		   price=excluded.price, image_url=excluded.image_url`,
		p.ID, p.Name, nullableString(p.Description), p.Price,
		nullableString(p.ImageURL), p.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes a product by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

// List returns all products ordered by creation time.
// POST: Returns products in the requested created_at order
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var description, imageURL sql.NullString
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price, &imageURL, &createdAt); err != nil {
			return nil, err
		}
		p.Description = description.String
		p.ImageURL = imageURL.String
		p.CreatedAt = parseTime(createdAt)
		products = append(products, p)
	}
	return products, rows.Err()
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
