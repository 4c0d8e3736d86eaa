package repository

import (
	"errors"

	"github.com/arminsheibak/Online-Food-API/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateWithProfile creates the account and its profile atomically.
func (r *UserRepository) CreateWithProfile(u *entity.User, p *entity.Profile) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		p.UserID = u.ID
		return tx.Create(p).Error
	})
}

// GetOrCreateProfile returns the user's profile, creating a default
// customer profile on first access.
func (r *UserRepository) GetOrCreateProfile(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	err := r.DB.First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = entity.Profile{UserID: userID, Role: entity.RoleCustomer}
		if err := r.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) GetProfile(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) SaveProfile(p *entity.Profile) error {
	return r.DB.Save(p).Error
}

// RoleOf reads the profile role; users without a profile are customers.
func (r *UserRepository) RoleOf(userID uint) (string, error) {
	var p entity.Profile
	err := r.DB.Select("role").First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.RoleCustomer, nil
	}
	if err != nil {
		return "", err
	}
	return p.Role, nil
}
