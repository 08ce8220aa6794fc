package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type LeadNoteRepository struct {
	db *sql.DB
}

func NewLeadNoteRepository(db *sql.DB) *LeadNoteRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadNoteRepository{db: db}
}

func (r *LeadNoteRepository) Create(note *models.LeadNote) error {
	const query = `
		INSERT INTO lead_notes (id, lead_id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, note.ID, note.LeadID, note.Note, note.CreatedBy, note.CreatedAt)
	return err
}

func (r *LeadNoteRepository) ListByLead(leadID string) ([]models.LeadNote, error) {
	const query = `
		SELECT id, lead_id, note, created_by, created_at
		FROM lead_notes
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.LeadNote
	for rows.Next() {
		var n models.LeadNote
		if err := rows.Scan(&n.ID, &n.LeadID, &n.Note, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
