package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Record 在给定事务中追加一条活动记录
func Record(tx *gorm.DB, activity *model.Activity) error {
	return tx.Create(activity).Error
}

func (r *ActivityRepository) ListByUser(userID uint, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	db := r.DB.Where("user_id = ?", userID).Order("date_created DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&activities).Error
	return activities, err
}
