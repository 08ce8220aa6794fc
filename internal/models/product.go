package models

import "time"

const (
	ProductStatusDraft     = "DRAFT"
	ProductStatusPublished = "PUBLISHED"
	ProductStatusArchived  = "ARCHIVED"
)

type Product struct {
	ID           string   `json:"id"`
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	ComparePrice *float64 `json:"comparePrice,omitempty"`

	BrandID       string   `json:"brandId"`
	CategoryID    string   `json:"categoryId"`
	SubcategoryID *string  `json:"subcategoryId,omitempty"`
	TagIDs        []string `json:"tagIds"`

	// merchandising links: sold-together group and related suggestions
	GroupedProductIDs []string `json:"groupedProductIds"`
	RelatedProductIDs []string `json:"relatedProductIds"`

	// jewelry attributes
	MetalType      *string  `json:"metalType,omitempty"`
	MetalPurity    *string  `json:"metalPurity,omitempty"`
	Gemstone       *string  `json:"gemstone,omitempty"`
	GemstoneWeight *float64 `json:"gemstoneWeight,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Dimensions     *string  `json:"dimensions,omitempty"`
	RingSize       *string  `json:"ringSize,omitempty"`

	StockQuantity int  `json:"stockQuantity"`
	InStock       bool `json:"inStock"`
	Featured      bool `json:"featured"`
	IsNew         bool `json:"isNew"`

	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	// SEO
	Slug      string   `json:"slug"`
	MetaTitle *string  `json:"metaTitle,omitempty"`
	MetaDesc  *string  `json:"metaDesc,omitempty"`
	Keywords  []string `json:"keywords"`

	Brand       *Brand         `json:"brand,omitempty"`
	Category    *Category      `json:"category,omitempty"`
	Subcategory *Subcategory   `json:"subcategory,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProductImage struct {
	ID        string `json:"id"`
	ProductID string `json:"-"`
	URL       string `json:"url"`
	AltText   string `json:"altText"`
	IsPrimary bool   `json:"isPrimary"`
	Position  int    `json:"position"`
}

// BulkUploadResult reports a CSV ingestion in aggregate.
type BulkUploadResult struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
