package service

import (
	"errors"

	"gorm.io/gorm"

	"parts_office/internal/model"
	"parts_office/internal/store"
)

// CreateProductInput is the catalog item payload.
type CreateProductInput struct {
	Marka    string `json:"marka" form:"marka" binding:"required"`
	Count    int64  `json:"count" form:"count" binding:"min=0"`
	Price    int64  `json:"price" form:"price" binding:"required,min=1"`
	Kwt      string `json:"kwt" form:"kwt"`
	Turnover string `json:"turnover" form:"turnover"`
	Location string `json:"location" form:"location"`
	Category string `json:"category" form:"category" binding:"required"`
}

// ProductSearch holds the optional filter fields.
type ProductSearch struct {
	Marka    string `form:"marka"`
	Location string `form:"location"`
	Kwt      string `form:"kwt"`
	Turnover string `form:"turnover"`
}

// ProductService owns catalog products. The referenced category must
// exist before a product can be filed under it.
type ProductService struct {
	products   *store.Store[model.Product]
	categories *store.Store[model.Category]
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		products:   store.New[model.Product](db),
		categories: store.New[model.Category](db),
	}
}

var ErrCategoryNotFound = errors.New("category not found")

func (s *ProductService) Create(in CreateProductInput, img string) (*model.Product, error) {
	if _, err := s.categories.FindByID(in.Category); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	prod := &model.Product{
		Marka:      in.Marka,
		Count:      in.Count,
		Price:      in.Price,
		Kwt:        in.Kwt,
		Turnover:   in.Turnover,
		Location:   in.Location,
		Img:        img,
		CategoryID: in.Category,
	}
	if err := s.products.Create(prod); err != nil {
		return nil, err
	}
	return s.products.FindByID(prod.ID, "Category")
}

func (s *ProductService) Get(id string) (*model.Product, error) {
	prod, err := s.products.FindByID(id, "Category")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) List() ([]model.Product, error) {
	return s.products.List("Category")
}

// Search filters the catalog by substring on the free-text columns.
func (s *ProductService) Search(f ProductSearch) ([]model.Product, error) {
	q := s.products.DB().Preload("Category")
	if f.Marka != "" {
		q = q.Where("marka LIKE ?", "%"+f.Marka+"%")
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Kwt != "" {
		q = q.Where("kwt LIKE ?", "%"+f.Kwt+"%")
	}
	if f.Turnover != "" {
		q = q.Where("turnover LIKE ?", "%"+f.Turnover+"%")
	}
	var out []model.Product
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductService) Update(id string, fields map[string]any) (*model.Product, error) {
	if cat, ok := fields["category_id"].(string); ok {
		if _, err := s.categories.FindByID(cat); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}
	prod, err := s.products.Update(id, fields, "Category")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Delete(id string) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
