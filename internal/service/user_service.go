package service

import (
	"context"
	"errors"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

func (s *UserService) List(filter repository.UserFilter) ([]model.User, int64, error) {
	return s.UserRepo.List(filter)
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// Update 保存用户资料，角色位与推荐码不走这里修改
func (s *UserService) Update(user *model.User) error {
	return s.UserRepo.Update(user)
}

// Delete 删除账号，自定义头像尽量一并清掉，清理失败不阻断删除
func (s *UserService) Delete(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if user.HasCustomPicture() {
		if err := s.Storage.Delete(context.Background(), user.Picture); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn("Failed to remove avatar on user delete",
				zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	return s.UserRepo.Delete(user)
}
