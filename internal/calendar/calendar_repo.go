package calendar

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(ctx context.Context) (*GoogleSettings, error)
	Save(ctx context.Context, s *GoogleSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*GoogleSettings, error) {
	var s GoogleSettings
	err := r.db.WithContext(ctx).Take(&s, "id = ?", settingsRowID).Error
	return &s, err
}

func (r *repository) Save(ctx context.Context, s *GoogleSettings) error {
	s.ID = settingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
