package orgunit

import (
	"context"

	"gorm.io/gorm"
)

// Repository runs the same CRUD against whichever whitelisted table the
// service hands it. The table name never comes from user input directly.
type Repository interface {
	FindAll(ctx context.Context, table string) ([]Unit, error)
	FindByID(ctx context.Context, table, id string) (*Unit, error)
	Create(ctx context.Context, table string, u *Unit) error
	Update(ctx context.Context, table string, u *Unit) error
	Delete(ctx context.Context, table, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, table string) ([]Unit, error) {
	var units []Unit
	err := r.db.WithContext(ctx).
		Table(table).
		Order("name").
		Find(&units).Error
	return units, err
}

func (r *repository) FindByID(ctx context.Context, table, id string) (*Unit, error) {
	var u Unit
	err := r.db.WithContext(ctx).
		Table(table).
		Take(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) Create(ctx context.Context, table string, u *Unit) error {
	return r.db.WithContext(ctx).Table(table).Create(u).Error
}

func (r *repository) Update(ctx context.Context, table string, u *Unit) error {
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":   u.Name,
			"active": u.Active,
		}).Error
}

func (r *repository) Delete(ctx context.Context, table, id string) error {
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Delete(&Unit{}).Error
}
