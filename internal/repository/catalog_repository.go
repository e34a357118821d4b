package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository 课程目录的专用查询，泛型仓储覆盖不到的部分
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// CourseSlugExists 在当前事务中检查 slug 是否已占用
func CourseSlugExists(tx *gorm.DB, slug string, excludeID uint) (bool, error) {
	var count int64
	db := tx.Model(&model.Course{}).Where("slug = ?", slug)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func ModuleSlugExists(tx *gorm.DB, slug string, excludeID uint) (bool, error) {
	var count int64
	db := tx.Model(&model.Module{}).Where("slug = ?", slug)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository) FindCourseBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Metadata").Preload("Content").Preload("Details").
		Where("slug = ?", slug).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CatalogRepository) ListPublishedCourses() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Metadata").
		Where("is_published = ? AND active = ?", true, true).
		Order("id ASC").Find(&courses).Error
	return courses, err
}
