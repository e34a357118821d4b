package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleStudent     UserRole = "student"
	RoleInstructor  UserRole = "instructor"
	RoleClient      UserRole = "client"
	RoleUnspecified UserRole = "unspecified"
)

// DefaultPicture 未上传头像时的占位图
const DefaultPicture = "default.png"

// swagger:model User
type User struct {
	BaseModel
	Username      string    `gorm:"size:150;not null" json:"username"`
	FirstName     string    `gorm:"size:150" json:"firstName"`
	LastName      string    `gorm:"size:150" json:"lastName"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"size:128;not null" json:"-"`
	Gender        string    `gorm:"size:10" json:"gender"`
	Phone         string    `gorm:"size:60" json:"phone"`
	Country       string    `gorm:"size:50" json:"country"`
	City          string    `gorm:"size:50" json:"city"`
	PostalCode    string    `gorm:"size:20" json:"postalCode"`
	Address       string    `gorm:"size:60" json:"address"`
	Picture       string    `gorm:"size:255;default:'default.png'" json:"picture"`
	IsStudent     bool      `gorm:"default:false" json:"isStudent"`
	IsInstructor  bool      `gorm:"default:false" json:"isInstructor"`
	IsClient      bool      `gorm:"default:false" json:"isClient"`
	IsSuperuser   bool      `gorm:"default:false" json:"isSuperuser"`
	Newsletter    bool      `gorm:"default:false" json:"newsletter"`
	EmailVerified bool      `gorm:"default:false" json:"emailVerified"`
	ReferralCode  string    `gorm:"size:20;uniqueIndex;not null;<-:create" json:"referralCode"`
	LastLogin     time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// Role 由角色标志位推导展示角色，优先级: superuser > student > instructor > client。
// 多个标志同时为真时取优先级最高的一个。
func (u *User) Role() UserRole {
	switch {
	case u.IsSuperuser:
		return RoleAdmin
	case u.IsStudent:
		return RoleStudent
	case u.IsInstructor:
		return RoleInstructor
	case u.IsClient:
		return RoleClient
	default:
		return RoleUnspecified
	}
}

// FullName 优先返回姓名，两者不全时回退到用户名
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// HasCustomPicture 是否上传过非默认头像
func (u *User) HasCustomPicture() bool {
	return u.Picture != "" && u.Picture != DefaultPicture
}
