package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByReferralCode(code string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("referral_code = ?", code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ReferralCodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("referral_code = ?", code).Count(&count).Error
	return count > 0, err
}

// UserFilter 用户列表过滤条件
type UserFilter struct {
	Role   model.UserRole
	Search string
	Page   int
	Limit  int
}

// List 按角色/关键词过滤用户，超级管理员不出现在普通列表里
func (r *UserRepository) List(f UserFilter) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := r.DB.Model(&model.User{}).Where("is_superuser = ?", false)

	switch f.Role {
	case model.RoleStudent:
		db = db.Where("is_student = ?", true)
	case model.RoleInstructor:
		db = db.Where("is_instructor = ?", true)
	case model.RoleClient:
		db = db.Where("is_client = ?", true)
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		db = db.Where("username LIKE ? OR email LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		db = db.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	err := db.Order("id ASC").Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).
		Error
}

func (r *UserRepository) Delete(user *model.User) error {
	return r.DB.Delete(user).Error
}
