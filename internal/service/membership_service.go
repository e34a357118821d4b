package service

import (
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/util"

	"gorm.io/gorm"
)

// MembershipService 身份资料（学员/讲师/客户）的生命周期联动：
// 建资料置角色位，删资料连带删除账号。
type MembershipService struct {
	DB       *gorm.DB
	Referral *ReferralService
}

func NewMembershipService(db *gorm.DB, referral *ReferralService) *MembershipService {
	return &MembershipService{DB: db, Referral: referral}
}

func profileExists(tx *gorm.DB, dest interface{}, userID uint) (bool, error) {
	var count int64
	err := tx.Model(dest).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func setRoleFlag(tx *gorm.DB, userID uint, column string, value bool) error {
	return tx.Model(&model.User{}).Where("id = ?", userID).Update(column, value).Error
}

// deleteOwningUser 删除身份资料后连带删除其账号，同一事务内完成
func deleteOwningUser(tx *gorm.DB, userID uint) error {
	return tx.Delete(&model.User{}, userID).Error
}

// BeforeCreateStudent 同一账号不允许重复建学员资料
func (s *MembershipService) BeforeCreateStudent(tx *gorm.DB, student *model.Student) error {
	exists, err := profileExists(tx, &model.Student{}, student.UserID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrProfileExists
	}
	return nil
}

// AfterCreateStudent 置学员角色位并挂接推荐关系
func (s *MembershipService) AfterCreateStudent(tx *gorm.DB, student *model.Student) error {
	if err := setRoleFlag(tx, student.UserID, "is_student", true); err != nil {
		return err
	}
	return s.Referral.LinkStudent(tx, student)
}

func (s *MembershipService) AfterDeleteStudent(tx *gorm.DB, student *model.Student) error {
	return deleteOwningUser(tx, student.UserID)
}

func (s *MembershipService) BeforeCreateInstructor(tx *gorm.DB, instructor *model.Instructor) error {
	exists, err := profileExists(tx, &model.Instructor{}, instructor.UserID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrProfileExists
	}
	return nil
}

func (s *MembershipService) AfterCreateInstructor(tx *gorm.DB, instructor *model.Instructor) error {
	return setRoleFlag(tx, instructor.UserID, "is_instructor", true)
}

func (s *MembershipService) AfterDeleteInstructor(tx *gorm.DB, instructor *model.Instructor) error {
	return deleteOwningUser(tx, instructor.UserID)
}

func (s *MembershipService) BeforeCreateClient(tx *gorm.DB, client *model.Client) error {
	exists, err := profileExists(tx, &model.Client{}, client.UserID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrProfileExists
	}
	return nil
}

func (s *MembershipService) AfterCreateClient(tx *gorm.DB, client *model.Client) error {
	if err := setRoleFlag(tx, client.UserID, "is_client", true); err != nil {
		return err
	}
	return s.Referral.LinkClient(tx, client)
}

func (s *MembershipService) AfterDeleteClient(tx *gorm.DB, client *model.Client) error {
	return deleteOwningUser(tx, client.UserID)
}
