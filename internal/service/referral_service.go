package service

import (
	"errors"
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

// ReferralService 维护推荐关系：注册资料时携带推荐码则建立推荐记录
type ReferralService struct {
	DB *gorm.DB
}

func NewReferralService(db *gorm.DB) *ReferralService {
	return &ReferralService{DB: db}
}

// resolveReferrer 按推荐码查推荐人，查不到返回 nil 而非错误
func resolveReferrer(tx *gorm.DB, code string) (*model.User, error) {
	if code == "" {
		return nil, nil
	}
	var referrer model.User
	err := tx.Where("referral_code = ?", code).First(&referrer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &referrer, nil
}

// LinkStudent 尝试将学员资料挂到推荐人名下。
// 推荐码无效时静默跳过；命中时写入推荐记录并回填规范化的推荐码。
func (s *ReferralService) LinkStudent(tx *gorm.DB, student *model.Student) error {
	referrer, err := resolveReferrer(tx, student.ReferrerCode)
	if err != nil {
		return err
	}
	if referrer == nil {
		return nil
	}

	referral := &model.Referral{
		ReferrerID:        referrer.ID,
		ReferredStudentID: &student.ID,
	}
	if err := tx.Create(referral).Error; err != nil {
		return err
	}

	// 回填规范化大小写的推荐码
	if student.ReferrerCode != referrer.ReferralCode {
		student.ReferrerCode = referrer.ReferralCode
		return tx.Model(student).Update("referrer_code", referrer.ReferralCode).Error
	}
	return nil
}

// LinkClient 客户侧的推荐挂接，语义与 LinkStudent 一致
func (s *ReferralService) LinkClient(tx *gorm.DB, client *model.Client) error {
	referrer, err := resolveReferrer(tx, client.ReferrerCode)
	if err != nil {
		return err
	}
	if referrer == nil {
		return nil
	}

	referral := &model.Referral{
		ReferrerID:       referrer.ID,
		ReferredClientID: &client.ID,
	}
	if err := tx.Create(referral).Error; err != nil {
		return err
	}

	if client.ReferrerCode != referrer.ReferralCode {
		client.ReferrerCode = referrer.ReferralCode
		return tx.Model(client).Update("referrer_code", referrer.ReferralCode).Error
	}
	return nil
}

// ListReferrals 推荐人视角的全部推荐记录
func (s *ReferralService) ListReferrals(referrerID uint) ([]model.Referral, error) {
	var referrals []model.Referral
	err := s.DB.Where("referrer_id = ?", referrerID).
		Order("date_created DESC").Find(&referrals).Error
	return referrals, err
}
