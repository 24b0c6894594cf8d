package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parts_office/internal/auth"
	"parts_office/internal/model"
	"parts_office/internal/store"
)

const bcryptCost = 7

// CreateAdminInput is the registration payload.
type CreateAdminInput struct {
	Fname    string `json:"fname" form:"fname" binding:"required"`
	Lname    string `json:"lname" form:"lname" binding:"required"`
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Super    bool   `json:"super" form:"super"`
}

// LoginInput is the sign-in payload.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminService owns admin registration, sign-in and removal. Tokens
// issued here are what the bearer middleware later verifies.
type AdminService struct {
	admins *store.Store[model.Admin]
	tokens *auth.Tokens
}

func NewAdminService(db *gorm.DB, tokens *auth.Tokens) *AdminService {
	return &AdminService{admins: store.New[model.Admin](db), tokens: tokens}
}

// Create registers an admin with a unique username and returns the
// record together with a fresh token.
func (s *AdminService) Create(in CreateAdminInput, image string) (*model.Admin, string, error) {
	var existing model.Admin
	err := s.admins.DB().First(&existing, "username = ?", in.Username).Error
	if err == nil {
		return nil, "", ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	admin := &model.Admin{
		Fname:    in.Fname,
		Lname:    in.Lname,
		Username: in.Username,
		Password: string(hash),
		Super:    in.Super,
		Image:    image,
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Sign(admin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// Login checks the password and issues a token.
func (s *AdminService) Login(in LoginInput) (*model.Admin, string, error) {
	var admin model.Admin
	if err := s.admins.DB().First(&admin, "username = ?", in.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(in.Password)) != nil {
		return nil, "", ErrBadCredentials
	}

	token, err := s.tokens.Sign(&admin)
	if err != nil {
		return nil, "", err
	}
	return &admin, token, nil
}

// Delete removes an admin. Only elevated actors may do this, and the
// middleware has already enforced that.
func (s *AdminService) Delete(id string) error {
	if err := s.admins.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return nil
}
