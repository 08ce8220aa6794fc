package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type ProductImageRepository struct {
	db *sql.DB
}

func NewProductImageRepository(db *sql.DB) *ProductImageRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &ProductImageRepository{db: db}
}

func (r *ProductImageRepository) Create(img *models.ProductImage) error {
	const query = `
		INSERT INTO product_images (id, product_id, url, alt_text, is_primary, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, img.ID, img.ProductID, img.URL, img.AltText, img.IsPrimary, img.Position)
	return err
}

func (r *ProductImageRepository) ListByProduct(productID string) ([]models.ProductImage, error) {
	const query = `
		SELECT id, product_id, url, alt_text, is_primary, position
		FROM product_images
		WHERE product_id = $1
		ORDER BY position ASC
	`
	rows, err := r.db.Query(query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.AltText, &img.IsPrimary, &img.Position); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *ProductImageRepository) Get(productID, imageID string) (*models.ProductImage, error) {
	const query = `
		SELECT id, product_id, url, alt_text, is_primary, position
		FROM product_images
		WHERE product_id = $1 AND id = $2
	`
	var img models.ProductImage
	err := r.db.QueryRow(query, productID, imageID).
		Scan(&img.ID, &img.ProductID, &img.URL, &img.AltText, &img.IsPrimary, &img.Position)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ProductImageRepository) Delete(productID, imageID string) error {
	_, err := r.db.Exec(`DELETE FROM product_images WHERE product_id=$1 AND id=$2`, productID, imageID)
	return err
}

// Reorder rewrites positions to match the given id order; the first image
// becomes primary.
func (r *ProductImageRepository) Reorder(productID string, imageIDs []string) error {
	for pos, id := range imageIDs {
		const query = `
			UPDATE product_images
			SET position=$1, is_primary=$2
			WHERE product_id=$3 AND id=$4
		`
		if _, err := r.db.Exec(query, pos, pos == 0, productID, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductImageRepository) CountByProduct(productID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM product_images WHERE product_id=$1`, productID).Scan(&n)
	return n, err
}
