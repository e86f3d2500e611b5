package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// Catalog is the read-mostly product/review data surface.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// ProductFilter narrows and orders a product listing. The zero value lists
// everything, most recently created first.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Order    string
}

var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"rating":     true,
}

// Products returns the catalog entries matching the filter. An empty catalog
// yields an empty slice and a nil error; only a real store failure yields an
// error.
func (c *Catalog) Products(filter ProductFilter) ([]models.Product, error) {
	query := c.db.Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		likePattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	sortBy := filter.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	order := strings.ToLower(filter.Order)
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	products := []models.Product{}
	if err := query.Order(fmt.Sprintf("%s %s", sortBy, order)).Find(&products).Error; err != nil {
		return nil, translate("catalog.products", err)
	}
	return products, nil
}

// Product returns a single catalog entry, or ErrNotFound.
func (c *Catalog) Product(id uint) (*models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, id).Error; err != nil {
		return nil, translate("catalog.product", err)
	}
	return &product, nil
}

// Categories returns the distinct category values present in the catalog.
func (c *Catalog) Categories() ([]string, error) {
	categories := []string{}
	err := c.db.Model(&models.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate("catalog.categories", err)
	}
	return categories, nil
}

// CreateProduct inserts a new catalog entry.
func (c *Catalog) CreateProduct(product *models.Product) error {
	if err := c.db.Create(product).Error; err != nil {
		return translate("catalog.create_product", err)
	}
	return nil
}

// UpdateProduct applies the given column updates to an existing product and
// returns the updated row.
func (c *Catalog) UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, id).Error; err != nil {
		return nil, translate("catalog.update_product", err)
	}
	if len(updates) > 0 {
		if err := c.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, translate("catalog.update_product", err)
		}
	}

	var saved models.Product
	if err := c.db.First(&saved, id).Error; err != nil {
		return nil, translate("catalog.update_product", err)
	}
	return &saved, nil
}

// DeleteProduct removes a catalog entry, reporting ErrNotFound when no row
// matched.
func (c *Catalog) DeleteProduct(id uint) error {
	result := c.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return translate("catalog.delete_product", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
