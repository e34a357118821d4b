package model

import (
	"time"
)

// Enrollment 学员与课程/项目的报名关系，(student, course, program) 三元组唯一
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID     uint       `gorm:"not null;uniqueIndex:idx_enrollments_offering" json:"studentId" binding:"required"`
	Student       Student    `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	CourseID      *uint      `gorm:"uniqueIndex:idx_enrollments_offering" json:"courseId"`
	Course        *Course    `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ProgramID     *uint      `gorm:"uniqueIndex:idx_enrollments_offering" json:"programId"`
	Program       *Program   `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	DateEnrolled  time.Time  `gorm:"autoCreateTime" json:"dateEnrolled"`
	DateCompleted *time.Time `json:"dateCompleted"`
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	Progress      float64    `gorm:"type:decimal(5,2);default:0" json:"progress"`
	Grade         *float64   `gorm:"type:decimal(5,2)" json:"grade"`
}
