package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Credential) error
	GetByEmail(ctx context.Context, email string) (*Credential, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Credential, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Credential) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var c Credential
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	return &c, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Credential, error) {
	var c Credential
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}
