package services

import (
	"errors"
	"time"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	UserRepo *repository.UserRepository
}

func NewProfileService(ur *repository.UserRepository) *ProfileService {
	return &ProfileService{UserRepo: ur}
}

// SelfProfileIn is the self-service projection: it has no role field at all,
// so a payload carrying one cannot reach the column.
type SelfProfileIn struct {
	FirstName string     `json:"firstName" binding:"required"`
	LastName  string     `json:"lastName" binding:"required"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
}

// AdminProfileIn is the admin projection; only this path can change role.
type AdminProfileIn struct {
	FirstName string     `json:"firstName" binding:"required"`
	LastName  string     `json:"lastName" binding:"required"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
	Role      string     `json:"role" binding:"required"`
}

// SelfProfileOut mirrors SelfProfileIn for reads: no role leak either way.
type SelfProfileOut struct {
	UserID    uint       `json:"userId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
}

func selfView(p *entity.Profile) *SelfProfileOut {
	return &SelfProfileOut{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Phone:     p.Phone,
		BirthDate: p.BirthDate,
	}
}

// Me returns the caller's profile, creating an empty customer profile on
// first access.
func (s *ProfileService) Me(userID uint) (*SelfProfileOut, error) {
	p, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	return selfView(p), nil
}

func (s *ProfileService) UpdateMe(userID uint, in *SelfProfileIn) (*SelfProfileOut, error) {
	p, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Address = in.Address
	p.Phone = in.Phone
	p.BirthDate = in.BirthDate
	if err := s.UserRepo.SaveProfile(p); err != nil {
		return nil, err
	}
	return selfView(p), nil
}

func (s *ProfileService) AdminGet(userID uint) (*entity.Profile, error) {
	p, err := s.UserRepo.GetProfile(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

func (s *ProfileService) AdminUpdate(userID uint, in *AdminProfileIn) (*entity.Profile, error) {
	if !entity.ValidRole(in.Role) {
		return nil, ErrInvalidRole
	}
	p, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Address = in.Address
	p.Phone = in.Phone
	p.BirthDate = in.BirthDate
	p.Role = in.Role
	if err := s.UserRepo.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}
