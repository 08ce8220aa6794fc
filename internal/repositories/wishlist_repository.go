package repositories

import (
	"database/sql"
	"log"

	"jewelcms/internal/models"
)

type WishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &WishlistRepository{db: db}
}

// List returns wishlists with their items (joined with the product summary)
// and the linked lead, newest first.
func (r *WishlistRepository) List() ([]models.Wishlist, error) {
	const query = `
		SELECT w.id, w.name, w.email, w.share_token, w.created_at, w.updated_at,
		       l.id, l.name, l.status, l.score
		FROM wishlists w
		LEFT JOIN leads l ON l.wishlist_id = w.id
		ORDER BY w.created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Wishlist
	index := map[string]int{}
	for rows.Next() {
		var w models.Wishlist
		var leadID, leadName, leadStatus sql.NullString
		var leadScore sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Name, &w.Email, &w.ShareToken, &w.CreatedAt, &w.UpdatedAt,
			&leadID, &leadName, &leadStatus, &leadScore); err != nil {
			return nil, err
		}
		if leadID.Valid {
			w.Lead = &models.LeadSummary{
				ID:     leadID.String,
				Name:   leadName.String,
				Status: leadStatus.String,
				Score:  int(leadScore.Int64),
			}
		}
		w.Items = []models.WishlistItem{}
		index[w.ID] = len(out)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const itemQuery = `
		SELECT i.id, i.wishlist_id, i.product_id, i.notes, i.added_at,
		       p.name, p.price, b.id, b.name
		FROM wishlist_items i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN brands b ON b.id = p.brand_id
		ORDER BY i.added_at ASC
	`
	itemRows, err := r.db.Query(itemQuery)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.WishlistItem
		var wishlistID, productName string
		var price float64
		var brandID, brandName sql.NullString
		if err := itemRows.Scan(&item.ID, &wishlistID, &item.ProductID, &item.Notes, &item.AddedAt,
			&productName, &price, &brandID, &brandName); err != nil {
			return nil, err
		}
		item.Product = &models.ProductSummary{ID: item.ProductID, Name: productName, Price: price}
		if brandID.Valid {
			item.Product.Brand = &models.Brand{ID: brandID.String, Name: brandName.String}
		}
		if i, ok := index[wishlistID]; ok {
			out[i].Items = append(out[i].Items, item)
		}
	}
	return out, itemRows.Err()
}

func (r *WishlistRepository) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM wishlist_items WHERE wishlist_id=$1`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(`DELETE FROM wishlists WHERE id=$1`, id)
	return err
}

func (r *WishlistRepository) UpdateShareToken(id, token string) error {
	res, err := r.db.Exec(`UPDATE wishlists SET share_token=$1, updated_at=NOW() WHERE id=$2`, token, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *WishlistRepository) CountAll() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM wishlists`).Scan(&n)
	return n, err
}
