package model

import (
	"time"
)

const (
	LearningStyleVisual      = "visual"
	LearningStyleAuditory    = "auditory"
	LearningStyleKinesthetic = "kinesthetic"
)

// Student 学员档案，与 User 一对一；删除档案时账户一并删除
// swagger:model Student
type Student struct {
	BaseModel
	UserID        uint        `gorm:"uniqueIndex;not null" json:"userId"`
	User          User        `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Goals         string      `gorm:"type:text" json:"goals"`
	LearningStyle string      `gorm:"size:50" json:"learningStyle" binding:"omitempty,oneof=visual auditory kinesthetic"`
	Availability  string      `gorm:"size:50" json:"availability"`
	ReferrerCode  string      `gorm:"size:20" json:"referrerCode"`
	TechSkills    []TechSkill `gorm:"many2many:student_tech_skills" json:"techSkills,omitempty"`
	Projects      []Project   `gorm:"many2many:student_projects" json:"projects,omitempty"`
	Tasks         []Task      `gorm:"many2many:student_tasks" json:"tasks,omitempty"`
}

// swagger:model Instructor
type Instructor struct {
	BaseModel
	UserID         uint    `gorm:"uniqueIndex;not null" json:"userId"`
	User           User    `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Bio            string  `gorm:"type:text" json:"bio"`
	Experience     int     `gorm:"default:0" json:"experience"`
	Education      string  `gorm:"type:text" json:"education"`
	Certifications string  `gorm:"type:text" json:"certifications"`
	Rating         float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	Reviews        int     `gorm:"default:0" json:"reviews"`
}

// swagger:model Client
type Client struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex;not null" json:"userId"`
	User         User   `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	CompanyName  string `gorm:"size:150" json:"companyName"`
	Industry     string `gorm:"size:100" json:"industry"`
	ReferrerCode string `gorm:"size:20" json:"referrerCode"`
}

// Referral 推荐记录，referred_student / referred_client 二者只会有一个
// swagger:model Referral
type Referral struct {
	BaseModel
	ReferrerID        uint      `gorm:"not null" json:"referrerId"`
	Referrer          User      `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ReferredStudentID *uint     `json:"referredStudentId"`
	ReferredStudent   *Student  `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ReferredClientID  *uint     `json:"referredClientId"`
	ReferredClient    *Client   `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	DateCreated       time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}
