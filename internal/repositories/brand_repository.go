package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type BrandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) *BrandRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(b *models.Brand) error {
	const query = `
		INSERT INTO brands (id, name, slug, description, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, b.ID, b.Name, b.Slug, b.Description, b.LogoURL, b.CreatedAt)
	return err
}

func (r *BrandRepository) Update(b *models.Brand) error {
	const query = `
		UPDATE brands SET name=$1, slug=$2, description=$3, logo_url=$4 WHERE id=$5
	`
	res, err := r.db.Exec(query, b.Name, b.Slug, b.Description, b.LogoURL, b.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *BrandRepository) GetByID(id string) (*models.Brand, error) {
	const query = `SELECT id, name, slug, description, logo_url, created_at FROM brands WHERE id=$1`
	var b models.Brand
	err := r.db.QueryRow(query, id).Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.LogoURL, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) List() ([]models.Brand, error) {
	const query = `SELECT id, name, slug, description, logo_url, created_at FROM brands ORDER BY name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.LogoURL, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BrandRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM brands WHERE id=$1`, id)
	return err
}

// ProductCount guards deletion of brands that still have products.
func (r *BrandRepository) ProductCount(id string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE brand_id=$1`, id).Scan(&n)
	return n, err
}
