package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		affiliate_url TEXT NOT NULL,
		category TEXT,
		price REAL,
		is_active INTEGER NOT NULL DEFAULT 1,
		clicks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

	CREATE TABLE IF NOT EXISTS clicks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id TEXT NOT NULL,
		referer TEXT,
		user_agent TEXT,
		ip_hash TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(product_id) REFERENCES products(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_clicks_product_id ON clicks(product_id);
	`
	_, err := db.Exec(query)
	return err
}

const productColumns = `id, title, description, image_url, affiliate_url, category, price, is_active, clicks, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var description, imageURL, category sql.NullString
	var price sql.NullFloat64

	err := row.Scan(
		&p.ID, &p.Title, &description, &imageURL, &p.AffiliateURL, &category,
		&price, &p.IsActive, &p.Clicks, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.ImageURL = imageURL.String
	p.Category = category.String
	if price.Valid {
		p.Price = &price.Float64
	}
	return &p, nil
}

func nullPrice(price *float64) sql.NullFloat64 {
	if price == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *price, Valid: true}
}

func (r *SQLiteRepository) Create(ctx context.Context, product *domain.Product) error {
	product.Clicks = 0
	return r.insert(ctx, product)
}

// Import inserts product as-is, keeping its ID and click count.
func (r *SQLiteRepository) Import(ctx context.Context, product *domain.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = product.CreatedAt
	}
	return r.insert(ctx, product)
}

func (r *SQLiteRepository) insert(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (` + productColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.ImageURL, p.AffiliateURL, p.Category,
		nullPrice(p.Price), p.IsActive, p.Clicks, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes every editable column. clicks is never touched here.
func (r *SQLiteRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products
			  SET title = ?, description = ?, image_url = ?, affiliate_url = ?, category = ?,
			      price = ?, is_active = ?, updated_at = ?
			  WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.ImageURL, p.AffiliateURL, p.Category,
		nullPrice(p.Price), p.IsActive, p.UpdatedAt, p.ID,
	)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clicks WHERE product_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// List returns products newest first. Supported filters: "active" (bool).
func (r *SQLiteRepository) List(ctx context.Context, filters map[string]interface{}) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1 = 1`
	args := []interface{}{}

	if active, ok := filters["active"].(bool); ok {
		query += " AND is_active = ?"
		args = append(args, active)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *SQLiteRepository) Dump(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at ASC, rowid ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *SQLiteRepository) RecordClick(ctx context.Context, click *domain.Click) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert click event
	queryClick := `INSERT INTO clicks (product_id, referer, user_agent, ip_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, queryClick, click.ProductID, click.Referer, click.UserAgent, click.IPHash, click.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}

	// 2. Increment product counter (atomic)
	queryCount := `UPDATE products SET clicks = clicks + 1 WHERE id = ?`
	if _, err := tx.ExecContext(ctx, queryCount, click.ProductID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		click.ID = id
	}
	return nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ensure interface compliance
var _ ports.ProductRepository = (*SQLiteRepository)(nil)
