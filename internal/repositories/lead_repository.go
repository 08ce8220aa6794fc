package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"jewelcms/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, email, phone, source, status, score, message,
	wishlist_id, assigned_to, utm_source, utm_medium, utm_campaign,
	referrer, ip_address, user_agent, created_at, updated_at, contacted_at, converted_at`

func scanLead(row interface{ Scan(...any) error }) (*models.Lead, error) {
	l := &models.Lead{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Status, &l.Score, &l.Message,
		&l.WishlistID, &l.AssignedTo, &l.UTMSource, &l.UTMMedium, &l.UTMCampaign,
		&l.Referrer, &l.IPAddress, &l.UserAgent, &l.CreatedAt, &l.UpdatedAt, &l.ContactedAt, &l.ConvertedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (id, name, email, phone, source, status, score, message,
			wishlist_id, assigned_to, utm_source, utm_medium, utm_campaign,
			referrer, ip_address, user_agent, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`
	_, err := r.db.Exec(query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source, lead.Status, lead.Score, lead.Message,
		lead.WishlistID, lead.AssignedTo, lead.UTMSource, lead.UTMMedium, lead.UTMCampaign,
		lead.Referrer, lead.IPAddress, lead.UserAgent, lead.CreatedAt, lead.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) GetByID(id string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
	lead, err := scanLead(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return lead, err
}

// Filter lists leads for the admin board. sort is whitelisted below; the
// board asks for createdAt_desc, the list view for score_desc.
func (r *LeadRepository) Filter(status string, limit int, sort string) ([]*models.Lead, error) {
	orderBy, ok := map[string]string{
		"createdAt_desc": "created_at DESC",
		"createdAt_asc":  "created_at ASC",
		"score_desc":     "score DESC",
		"score_asc":      "score ASC",
	}[sort]
	if !ok {
		orderBy = "created_at DESC"
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	i := 1

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, status)
		i++
	}
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d", orderBy, i)
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) UpdateStatus(id, status string, contactedAt, convertedAt *time.Time) error {
	const query = `
		UPDATE leads
		SET status=$1,
		    contacted_at=COALESCE(contacted_at, $2),
		    converted_at=COALESCE(converted_at, $3),
		    updated_at=$4
		WHERE id=$5
	`
	res, err := r.db.Exec(query, status, contactedAt, convertedAt, time.Now(), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LeadRepository) UpdateAssignment(id string, assignedTo *string) error {
	const query = `UPDATE leads SET assigned_to=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.Exec(query, assignedTo, time.Now(), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LeadRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

// ScoreFacts feeds the stats endpoint: per-category counts plus average.
func (r *LeadRepository) ScoreFacts(hotMin, warmMin int) (hot, warm, cold int, avg float64, err error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE score >= $1),
			COUNT(*) FILTER (WHERE score >= $2 AND score < $1),
			COUNT(*) FILTER (WHERE score < $2),
			COALESCE(AVG(score), 0)
		FROM leads
	`
	err = r.db.QueryRow(query, hotMin, warmMin).Scan(&hot, &warm, &cold, &avg)
	return
}

func (r *LeadRepository) CountCreatedSince(since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}
