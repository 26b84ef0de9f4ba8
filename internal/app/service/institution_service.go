package service

import (
	"errors"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInstitutionNotFound = errors.New("institution not found")

type InstitutionInput struct {
	NameBn          string `json:"name_bn" binding:"required"`
	NameEn          string `json:"name_en"`
	EIIN            string `json:"eiin"`
	Address         string `json:"address"`
	HeadTeacherName string `json:"head_teacher_name"`
	EstablishedYear int    `json:"established_year"`
}

type InstitutionService interface {
	Create(input InstitutionInput) (*model.Institution, error)
	GetByID(id uint) (*model.Institution, error)
	List(search string) ([]model.Institution, error)
	Update(id uint, input InstitutionInput) (*model.Institution, error)
	Delete(id uint) error
}

type institutionService struct {
	institutionRepo repository.InstitutionRepository
}

func NewInstitutionService(institutionRepo repository.InstitutionRepository) InstitutionService {
	return &institutionService{institutionRepo: institutionRepo}
}

func (s *institutionService) Create(input InstitutionInput) (*model.Institution, error) {
	institution := &model.Institution{
		NameBn:          input.NameBn,
		NameEn:          input.NameEn,
		EIIN:            input.EIIN,
		Address:         input.Address,
		HeadTeacherName: input.HeadTeacherName,
		EstablishedYear: input.EstablishedYear,
	}

	if err := s.institutionRepo.Create(institution); err != nil {
		return nil, err
	}

	logger.Info("Institution created", map[string]interface{}{
		"institution_id": institution.ID,
		"name_bn":        institution.NameBn,
		"eiin":           institution.EIIN,
	})
	return institution, nil
}

func (s *institutionService) GetByID(id uint) (*model.Institution, error) {
	institution, err := s.institutionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, err
	}
	return institution, nil
}

func (s *institutionService) List(search string) ([]model.Institution, error) {
	return s.institutionRepo.FindAll(search)
}

func (s *institutionService) Update(id uint, input InstitutionInput) (*model.Institution, error) {
	institution, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	institution.NameBn = input.NameBn
	institution.NameEn = input.NameEn
	institution.EIIN = input.EIIN
	institution.Address = input.Address
	institution.HeadTeacherName = input.HeadTeacherName
	institution.EstablishedYear = input.EstablishedYear

	if err := s.institutionRepo.Update(institution); err != nil {
		return nil, err
	}
	return institution, nil
}

func (s *institutionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.institutionRepo.Delete(id); err != nil {
		return err
	}
	logger.Info("Institution deleted", map[string]interface{}{"institution_id": id})
	return nil
}
