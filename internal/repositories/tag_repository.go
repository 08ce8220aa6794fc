package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(t *models.Tag) error {
	const query = `INSERT INTO tags (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(query, t.ID, t.Name, t.Slug, t.CreatedAt)
	return err
}

func (r *TagRepository) Update(t *models.Tag) error {
	res, err := r.db.Exec(`UPDATE tags SET name=$1, slug=$2 WHERE id=$3`, t.Name, t.Slug, t.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TagRepository) List() ([]models.Tag, error) {
	rows, err := r.db.Query(`SELECT id, name, slug, created_at FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TagRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM tags WHERE id=$1`, id)
	return err
}
