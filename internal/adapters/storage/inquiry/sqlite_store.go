package inquiry

import (
	"context"
	"database/sql"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/inquiry"
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

const inquiryColumns = `id, product_id, product_name, customer_name, customer_email,
		message, phone, address, postal_code, city, created_at`

// GetByID retrieves an inquiry by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Inquiry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM product_inquiries WHERE id = ?`, id)
	var i domain.Inquiry
	var productID, productName, message, phone, address, postalCode, city sql.NullString
	var createdAt string
	err := row.Scan(&i.ID, &productID, &productName, &i.CustomerName, &i.CustomerEmail,
		&message, &phone, &address, &postalCode, &city, &createdAt)
	if err != nil {
		return domain.Inquiry{}, err
	}
	i.ProductID = productID.String
	i.ProductName = productName.String
	i.Message = message.String
	i.Phone = phone.String
	i.Address = address.String
	i.PostalCode = postalCode.String
	i.City = city.String
	i.CreatedAt = parseTime(createdAt)
	return i, nil
}

// Save inserts an inquiry. Inquiries are never updated after creation, so
// a duplicate ID is an error rather than an upsert.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, i domain.Inquiry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO product_inquiries (id, product_id, product_name, customer_name, customer_email,
		   message, phone, address, postal_code, city, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, nullableString(i.ProductID), nullableString(i.ProductName),
		i.CustomerName, i.CustomerEmail,
		nullableString(i.Message), nullableString(i.Phone), nullableString(i.Address),
		nullableString(i.PostalCode), nullableString(i.City),
		i.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes an inquiry by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM product_inquiries WHERE id = ?`, id)
	return err
}

// List returns all inquiries ordered by creation time.
// POST: Returns inquiries in the requested created_at order
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM product_inquiries `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var i domain.Inquiry
		var productID, productName, message, phone, address, postalCode, city sql.NullString
		var createdAt string
		err := rows.Scan(&i.ID, &productID, &productName, &i.CustomerName, &i.CustomerEmail,
			&message, &phone, &address, &postalCode, &city, &createdAt)
		if err != nil {
			return nil, err
		}
		i.ProductID = productID.String
		i.ProductName = productName.String
		i.Message = message.String
		i.Phone = phone.String
		i.Address = address.String
		i.PostalCode = postalCode.String
		i.City = city.String
		i.CreatedAt = parseTime(createdAt)
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
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
