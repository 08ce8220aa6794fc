package repositories

import (
	"database/sql"
	"log"
	"time"

	"jewelcms/internal/models"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &CustomerRepository{db: db}
}

// aggregates join wishlists and leads by customer email — customers are
// matched to their activity through the email they left on capture forms
const customerSelect = `
	SELECT cu.id, cu.email, cu.first_name, cu.last_name, cu.phone, cu.is_active,
	       cu.created_at, cu.last_login_at,
	       (SELECT COUNT(*) FROM wishlists w WHERE w.email = cu.email),
	       (SELECT COUNT(*) FROM leads l WHERE l.email = cu.email),
	       COALESCE((SELECT MAX(l.score) FROM leads l WHERE l.email = cu.email), 0),
	       EXISTS (SELECT 1 FROM leads l WHERE l.email = cu.email AND l.status = 'CONVERTED')
	FROM customers cu`

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	c := &models.Customer{}
	err := row.Scan(
		&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.IsActive,
		&c.CreatedAt, &c.LastLoginAt,
		&c.TotalCollections, &c.TotalLeads, &c.HighestScore, &c.HasConverted,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) List() ([]*models.Customer, error) {
	rows, err := r.db.Query(customerSelect + ` ORDER BY cu.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) GetByID(id string) (*models.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(customerSelect+` WHERE cu.id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *CustomerRepository) UpdateActive(id string, isActive bool) error {
	res, err := r.db.Exec(`UPDATE customers SET is_active=$1 WHERE id=$2`, isActive, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CustomerRepository) Stats(monthStart time.Time) (*models.CustomerStats, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM leads l WHERE l.email = customers.email AND l.status = 'CONVERTED')),
			COALESCE((SELECT AVG(score) FROM leads), 0)
		FROM customers
	`
	var s models.CustomerStats
	err := r.db.QueryRow(query, monthStart).Scan(&s.Total, &s.NewThisMonth, &s.WithConversions, &s.AvgScore)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
