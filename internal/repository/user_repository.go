package repository

import (
	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create persists a new user. The unique index on username_normalized makes
// the insert fail with gorm.ErrDuplicatedKey on a concurrent duplicate.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByNormalizedUsername finds a user by the case-folded username
func (r *GormUserRepository) FindByNormalizedUsername(normalized string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username_normalized = ?", normalized).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
