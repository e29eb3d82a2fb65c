package dao

import (
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/models"
)

type LaunchDAO interface {
	SaveLaunch(launch *models.Launch) error
	GetLaunchByUUID(uuid string) (*models.Launch, error)
	ListLaunches() ([]models.Launch, error)
	ListLaunchesWithPagination(page, limit int) ([]models.Launch, int64, error)
	UpdateLaunch(launch *models.Launch) error
	DeleteLaunch(uuid string) error
}

type launchDAO struct {
	db *gorm.DB
}

func NewLaunchDAO(db *gorm.DB) LaunchDAO {
	return &launchDAO{db: db}
}

func (dao *launchDAO) SaveLaunch(launch *models.Launch) error {
	return dao.db.Create(launch).Error
}

func (dao *launchDAO) UpdateLaunch(launch *models.Launch) error {
	return dao.db.Save(launch).Error
}

func (dao *launchDAO) GetLaunchByUUID(uuid string) (*models.Launch, error) {
	var launch models.Launch
	if err := dao.db.Where("uuid = ?", uuid).First(&launch).Error; err != nil {
		return nil, err
	}
	return &launch, nil
}

func (dao *launchDAO) ListLaunches() ([]models.Launch, error) {
	var launches []models.Launch
	if err := dao.db.Order("created_at desc").Limit(50).Find(&launches).Error; err != nil {
		return nil, err
	}
	return launches, nil
}

func (dao *launchDAO) ListLaunchesWithPagination(page, limit int) ([]models.Launch, int64, error) {
	var launches []models.Launch
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	if err := dao.db.Model(&models.Launch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := dao.db.Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&launches).Error; err != nil {
		return nil, 0, err
	}

	return launches, total, nil
}

func (dao *launchDAO) DeleteLaunch(uuid string) error {
	result := dao.db.Where("uuid = ?", uuid).Delete(&models.Launch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
