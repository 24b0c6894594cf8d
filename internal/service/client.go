package service

import (
	"errors"

	"gorm.io/gorm"

	"parts_office/internal/auth"
	"parts_office/internal/model"
	"parts_office/internal/store"
)

// CreateClientInput is the client registration payload.
type CreateClientInput struct {
	Fname       string `json:"fname" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Firma       string `json:"firma" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

// ClientService owns client records. The creating admin becomes the
// owning admin of the client.
type ClientService struct {
	clients *store.Store[model.Client]
	admins  *store.Store[model.Admin]
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{
		clients: store.New[model.Client](db),
		admins:  store.New[model.Admin](db),
	}
}

// Create registers a client under the acting admin. The phone number
// must be unused: it is the lookup key contracts resolve clients by.
func (s *ClientService) Create(actor auth.Actor, in CreateClientInput) (*model.Client, error) {
	admin, err := s.admins.FindByID(actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrMalformedID) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	var existing model.Client
	err = s.clients.DB().First(&existing, "phone_number = ?", in.PhoneNumber).Error
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := &model.Client{
		Fname:       in.Fname,
		PhoneNumber: in.PhoneNumber,
		Firma:       in.Firma,
		Type:        in.Type,
		Location:    in.Location,
		AdminID:     admin.ID,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, err
	}
	return s.clients.FindByID(client.ID, "Admin")
}

// Get resolves a client with its owning admin populated.
func (s *ClientService) Get(id string) (*model.Client, error) {
	client, err := s.clients.FindByID(id, "Admin")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Search filters clients by name, phone number or firma substring.
func (s *ClientService) Search(query string) ([]model.Client, error) {
	q := s.clients.DB().Preload("Admin")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("fname LIKE ? OR phone_number LIKE ? OR firma LIKE ?", like, like, like)
	}
	var out []model.Client
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial payload; the actor only needs to be a valid
// admin.
func (s *ClientService) Update(actor auth.Actor, id string, fields map[string]any) (*model.Client, error) {
	if _, err := s.admins.FindByID(actor.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrMalformedID) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	client, err := s.clients.Update(id, fields, "Admin")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Delete removes a client. Contracts referencing it are left alone.
func (s *ClientService) Delete(id string) error {
	if err := s.clients.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}
