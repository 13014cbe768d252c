package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	List() ([]*entity.Category, error)
	CountProducts(categoryID string) (int, error)
}
