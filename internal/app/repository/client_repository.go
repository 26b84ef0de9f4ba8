package repository

import (
	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindByID(id uint) (*model.Client, error)
	FindAll(search string) ([]model.Client, error)
	Update(client *model.Client) error
	Delete(id uint) error
	Count() (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *model.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		logger.Error("Failed to create client in database", err, map[string]interface{}{
			"name": client.Name,
		})
		return err
	}
	return nil
}

func (r *clientRepository) FindByID(id uint) (*model.Client, error) {
	var client model.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(search string) ([]model.Client, error) {
	query := r.db.Model(&model.Client{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR shop_name LIKE ? OR phone LIKE ?", like, like, like)
	}

	var clients []model.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		logger.Error("Failed to list clients from database", err, map[string]interface{}{
			"search": search,
		})
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(id uint) error {
	return r.db.Delete(&model.Client{}, id).Error
}

func (r *clientRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
