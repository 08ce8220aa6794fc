package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"jewelcms/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &ProductRepository{db: db}
}

const productColumns = `p.id, p.sku, p.name, p.description, p.price, p.compare_price,
	p.brand_id, p.category_id, p.subcategory_id,
	p.metal_type, p.metal_purity, p.gemstone, p.gemstone_weight,
	p.weight, p.dimensions, p.ring_size,
	p.stock_quantity, p.in_stock, p.featured, p.is_new,
	p.status, p.published_at, p.slug, p.meta_title, p.meta_desc, p.keywords,
	p.grouped_product_ids, p.related_product_ids,
	p.created_at, p.updated_at,
	b.name, c.name`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	p := &models.Product{}
	var keywords, grouped, related pq.StringArray
	var brandName, categoryName sql.NullString
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.ComparePrice,
		&p.BrandID, &p.CategoryID, &p.SubcategoryID,
		&p.MetalType, &p.MetalPurity, &p.Gemstone, &p.GemstoneWeight,
		&p.Weight, &p.Dimensions, &p.RingSize,
		&p.StockQuantity, &p.InStock, &p.Featured, &p.IsNew,
		&p.Status, &p.PublishedAt, &p.Slug, &p.MetaTitle, &p.MetaDesc, &keywords,
		&grouped, &related,
		&p.CreatedAt, &p.UpdatedAt,
		&brandName, &categoryName,
	)
	if err != nil {
		return nil, err
	}
	p.Keywords = keywords
	p.GroupedProductIDs = grouped
	p.RelatedProductIDs = related
	if brandName.Valid {
		p.Brand = &models.Brand{ID: p.BrandID, Name: brandName.String}
	}
	if categoryName.Valid {
		p.Category = &models.Category{ID: p.CategoryID, Name: categoryName.String}
	}
	return p, nil
}

const productJoins = `
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories c ON c.id = p.category_id`

func (r *ProductRepository) Create(p *models.Product) error {
	const query = `
		INSERT INTO products (id, sku, name, description, price, compare_price,
			brand_id, category_id, subcategory_id,
			metal_type, metal_purity, gemstone, gemstone_weight,
			weight, dimensions, ring_size,
			stock_quantity, in_stock, featured, is_new,
			status, published_at, slug, meta_title, meta_desc, keywords,
			grouped_product_ids, related_product_ids,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,
			$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30)
	`
	_, err := r.db.Exec(query,
		p.ID, p.SKU, p.Name, p.Description, p.Price, p.ComparePrice,
		p.BrandID, p.CategoryID, p.SubcategoryID,
		p.MetalType, p.MetalPurity, p.Gemstone, p.GemstoneWeight,
		p.Weight, p.Dimensions, p.RingSize,
		p.StockQuantity, p.InStock, p.Featured, p.IsNew,
		p.Status, p.PublishedAt, p.Slug, p.MetaTitle, p.MetaDesc, pq.StringArray(p.Keywords),
		pq.StringArray(p.GroupedProductIDs), pq.StringArray(p.RelatedProductIDs),
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProductRepository) Update(p *models.Product) error {
	const query = `
		UPDATE products
		SET sku=$1, name=$2, description=$3, price=$4, compare_price=$5,
		    brand_id=$6, category_id=$7, subcategory_id=$8,
		    metal_type=$9, metal_purity=$10, gemstone=$11, gemstone_weight=$12,
		    weight=$13, dimensions=$14, ring_size=$15,
		    stock_quantity=$16, in_stock=$17, featured=$18, is_new=$19,
		    status=$20, published_at=$21, slug=$22, meta_title=$23, meta_desc=$24, keywords=$25,
		    grouped_product_ids=$26, related_product_ids=$27,
		    updated_at=$28
		WHERE id=$29
	`
	res, err := r.db.Exec(query,
		p.SKU, p.Name, p.Description, p.Price, p.ComparePrice,
		p.BrandID, p.CategoryID, p.SubcategoryID,
		p.MetalType, p.MetalPurity, p.Gemstone, p.GemstoneWeight,
		p.Weight, p.Dimensions, p.RingSize,
		p.StockQuantity, p.InStock, p.Featured, p.IsNew,
		p.Status, p.PublishedAt, p.Slug, p.MetaTitle, p.MetaDesc, pq.StringArray(p.Keywords),
		pq.StringArray(p.GroupedProductIDs), pq.StringArray(p.RelatedProductIDs),
		time.Now(), p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus is the single-field update used by bulk publish/draft.
func (r *ProductRepository) UpdateStatus(id, status string, publishedAt *time.Time) error {
	const query = `
		UPDATE products
		SET status=$1, published_at=COALESCE($2, published_at), updated_at=$3
		WHERE id=$4
	`
	res, err := r.db.Exec(query, status, publishedAt, time.Now(), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + productJoins + ` WHERE p.id=$1`
	p, err := scanProduct(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *ProductRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=$1`, id)
	return err
}

// SKUExists backs the duplicate-SKU check; excludeID skips the product
// being edited.
func (r *ProductRepository) SKUExists(sku, excludeID string) (bool, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM products WHERE sku=$1 AND id <> $2`, sku, excludeID,
	).Scan(&n)
	return n > 0, err
}

func (r *ProductRepository) Filter(status, search, brandID, categoryID string, limit int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + productJoins + ` WHERE 1=1`
	args := []interface{}{}
	i := 1

	if status != "" {
		query += fmt.Sprintf(" AND p.status = $%d", i)
		args = append(args, status)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.sku ILIKE $%d)", i, i)
		args = append(args, "%"+search+"%")
		i++
	}
	if brandID != "" {
		query += fmt.Sprintf(" AND p.brand_id = $%d", i)
		args = append(args, brandID)
		i++
	}
	if categoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", i)
		args = append(args, categoryID)
		i++
	}
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d", i)
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) SetTags(productID string, tagIDs []string) error {
	if _, err := r.db.Exec(`DELETE FROM product_tags WHERE product_id=$1`, productID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(
			`INSERT INTO product_tags (product_id, tag_id) VALUES ($1, $2)`, productID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) TagIDs(productID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT tag_id FROM product_tags WHERE product_id=$1`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *ProductRepository) CountAll() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
