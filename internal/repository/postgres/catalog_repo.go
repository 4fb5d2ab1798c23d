package postgres

import (
	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type CatalogPostgresRepo struct {
	db *gorm.DB
}

func NewCatalogPostgres(db *gorm.DB) *CatalogPostgresRepo {
	return &CatalogPostgresRepo{db: db}
}

func (r *CatalogPostgresRepo) Create(p models.Product) error {
	var count int
	if err := r.db.Model(&models.Product{}).
		Where("product_id = ?", p.ProductID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	if count > 0 {
		return ErrDuplicate
	}
	return errors.Wrap(r.db.Create(&p).Error, "create product")
}

func (r *CatalogPostgresRepo) Update(p models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("product_id = ?", p.ProductID).
		Updates(map[string]interface{}{
			"title":    p.Title,
			"price":    p.Price,
			"brand":    p.Brand,
			"image":    p.Image,
			"category": p.Category,
			"sizes":    p.Sizes,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update product")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogPostgresRepo) Delete(id string) error {
	res := r.db.Where("product_id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogPostgresRepo) Get(id string) (models.Product, error) {
	var p models.Product
	q := r.db.Where("product_id = ?", id).First(&p)
	return p, q.Error
}

func (r *CatalogPostgresRepo) GetAll() ([]models.Product, error) {
	var out []models.Product
	q := r.db.Order("created_at desc").Find(&out)
	return out, q.Error
}

func (r *CatalogPostgresRepo) GetByCategory(category string) ([]models.Product, error) {
	var out []models.Product
	q := r.db.Where("category = ?", category).Order("created_at desc").Find(&out)
	return out, q.Error
}
