package service

import (
	"errors"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientInput struct {
	Name     string `json:"name" binding:"required"`
	ShopName string `json:"shop_name"`
	Phone    string `json:"phone"`
	Area     string `json:"area"`
	Notes    string `json:"notes"`
}

type ClientService interface {
	Create(input ClientInput) (*model.Client, error)
	GetByID(id uint) (*model.Client, error)
	List(search string) ([]model.Client, error)
	Update(id uint, input ClientInput) (*model.Client, error)
	Delete(id uint) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(input ClientInput) (*model.Client, error) {
	client := &model.Client{
		Name:     input.Name,
		ShopName: input.ShopName,
		Phone:    input.Phone,
		Area:     input.Area,
		Notes:    input.Notes,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	logger.Info("Client created", map[string]interface{}{
		"client_id": client.ID,
		"name":      client.Name,
	})
	return client, nil
}

func (s *clientService) GetByID(id uint) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(search string) ([]model.Client, error) {
	return s.clientRepo.FindAll(search)
}

func (s *clientService) Update(id uint, input ClientInput) (*model.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.ShopName = input.ShopName
	client.Phone = input.Phone
	client.Area = input.Area
	client.Notes = input.Notes

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(id); err != nil {
		return err
	}
	logger.Info("Client deleted", map[string]interface{}{"client_id": id})
	return nil
}
