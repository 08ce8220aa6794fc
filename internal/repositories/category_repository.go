package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(c *models.Category) error {
	const query = `
		INSERT INTO categories (id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, c.ID, c.Name, c.Slug, c.Description, c.CreatedAt)
	return err
}

func (r *CategoryRepository) Update(c *models.Category) error {
	const query = `UPDATE categories SET name=$1, slug=$2, description=$3 WHERE id=$4`
	res, err := r.db.Exec(query, c.Name, c.Slug, c.Description, c.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	const query = `SELECT id, name, slug, description, created_at FROM categories WHERE id=$1`
	var c models.Category
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns categories with their subcategories attached.
func (r *CategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	index := map[string]int{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := r.db.Query(`SELECT id, category_id, name, slug, created_at FROM subcategories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	for subRows.Next() {
		var s models.Subcategory
		if err := subRows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[s.CategoryID]; ok {
			out[i].Subcategories = append(out[i].Subcategories, s)
		}
	}
	return out, subRows.Err()
}

func (r *CategoryRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id=$1`, id)
	return err
}

func (r *CategoryRepository) ProductCount(id string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE category_id=$1`, id).Scan(&n)
	return n, err
}

// --- subcategories ---

func (r *CategoryRepository) CreateSubcategory(s *models.Subcategory) error {
	const query = `
		INSERT INTO subcategories (id, category_id, name, slug, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, s.ID, s.CategoryID, s.Name, s.Slug, s.CreatedAt)
	return err
}

func (r *CategoryRepository) UpdateSubcategory(s *models.Subcategory) error {
	const query = `UPDATE subcategories SET name=$1, slug=$2 WHERE id=$3 AND category_id=$4`
	res, err := r.db.Exec(query, s.Name, s.Slug, s.ID, s.CategoryID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CategoryRepository) DeleteSubcategory(categoryID, subcategoryID string) error {
	_, err := r.db.Exec(`DELETE FROM subcategories WHERE category_id=$1 AND id=$2`, categoryID, subcategoryID)
	return err
}
