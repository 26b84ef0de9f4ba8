package repository

import (
	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"gorm.io/gorm"
)

type InstitutionRepository interface {
	Create(institution *model.Institution) error
	BulkCreate(institutions []model.Institution, batchSize int) error
	FindByID(id uint) (*model.Institution, error)
	FindAll(search string) ([]model.Institution, error)
	Update(institution *model.Institution) error
	Delete(id uint) error
	Count() (int64, error)
}

type institutionRepository struct {
	db *gorm.DB
}

func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) Create(institution *model.Institution) error {
	if err := r.db.Create(institution).Error; err != nil {
		logger.Error("Failed to create institution in database", err, map[string]interface{}{
			"name_bn": institution.NameBn,
			"eiin":    institution.EIIN,
		})
		return err
	}
	return nil
}

func (r *institutionRepository) BulkCreate(institutions []model.Institution, batchSize int) error {
	if err := r.db.CreateInBatches(institutions, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create institutions in database", err, map[string]interface{}{
			"count": len(institutions),
		})
		return err
	}
	return nil
}

func (r *institutionRepository) FindByID(id uint) (*model.Institution, error) {
	var institution model.Institution
	if err := r.db.First(&institution, id).Error; err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepository) FindAll(search string) ([]model.Institution, error) {
	query := r.db.Model(&model.Institution{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name_bn LIKE ? OR name_en LIKE ? OR eiin LIKE ?", like, like, like)
	}

	var institutions []model.Institution
	if err := query.Order("name_bn ASC").Find(&institutions).Error; err != nil {
		logger.Error("Failed to list institutions from database", err, map[string]interface{}{
			"search": search,
		})
		return nil, err
	}
	return institutions, nil
}

func (r *institutionRepository) Update(institution *model.Institution) error {
	return r.db.Save(institution).Error
}

func (r *institutionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Institution{}, id).Error
}

func (r *institutionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Institution{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
