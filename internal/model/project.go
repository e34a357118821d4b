package model

import (
	"errors"
	"time"
)

const (
	StatusNew       = "new"
	StatusCompleted = "completed"
)

var ErrStartAfterEnd = errors.New("start date cannot be after end date")

// Project 的 end_date 缺省时在创建路径按 start_date + duration 周计算一次，
// 之后不再重算。start/end 先后关系由显式 Validate 检查，持久化不强制。
// swagger:model Project
type Project struct {
	BaseModel
	Title         string              `gorm:"size:100;not null" json:"title" binding:"required"`
	Description   string              `gorm:"type:text" json:"description"`
	Priority      int                 `gorm:"default:1" json:"priority"`
	Progress      int                 `gorm:"default:0" json:"progress"`
	Status        string              `gorm:"size:10;default:'new'" json:"status" binding:"omitempty,oneof=new completed"`
	StartDate     time.Time           `json:"startDate"`
	Duration      int                 `gorm:"default:12" json:"duration"` // 周
	EndDate       *time.Time          `json:"endDate"`
	OwnerID       uint                `gorm:"not null" json:"ownerId" binding:"required"`
	Owner         User                `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	AssignedToID  *uint               `json:"assignedToId"`
	AssignedTo    *User               `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Paid          bool                `gorm:"default:true" json:"paid"`
	Budget        *float64            `gorm:"type:decimal(10,2)" json:"budget"`
	CompletedDate *time.Time          `json:"completedDate"`
	Comments      string              `gorm:"type:text" json:"comments"`
	Tags          []Tag               `gorm:"many2many:project_tags" json:"tags,omitempty"`
	Attachments   []ProjectAttachment `gorm:"many2many:project_attachment_links" json:"attachments,omitempty"`
}

// FillEndDate 计算缺省的结束日期，已设置时不改动
func (p *Project) FillEndDate() {
	if p.EndDate == nil {
		end := p.StartDate.AddDate(0, 0, 7*p.Duration)
		p.EndDate = &end
	}
}

// Validate 校验日期先后关系，写入不可信输入前由调用方显式调用
func (p *Project) Validate() error {
	if p.EndDate != nil && !p.StartDate.IsZero() && p.StartDate.After(*p.EndDate) {
		return ErrStartAfterEnd
	}
	return nil
}

// swagger:model Task
type Task struct {
	BaseModel
	ProjectID      uint      `gorm:"not null" json:"projectId" binding:"required"`
	Project        Project   `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Title          string    `gorm:"size:100;not null" json:"title" binding:"required"`
	Description    string    `gorm:"type:text" json:"description"`
	Priority       int       `gorm:"default:1" json:"priority"`
	Progress       int       `gorm:"default:0" json:"progress"`
	Status         string    `gorm:"size:10;default:'new'" json:"status" binding:"omitempty,oneof=new completed"`
	DueDate        time.Time `json:"dueDate"`
	EstimatedHours *float64  `gorm:"type:decimal(6,2)" json:"estimatedHours"`
	ActualHours    *float64  `gorm:"type:decimal(6,2)" json:"actualHours"`
	AssignedToID   *uint     `json:"assignedToId"`
	AssignedTo     *User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Comments       string    `gorm:"type:text" json:"comments"`
	Tags           []Tag     `gorm:"many2many:task_tags" json:"tags,omitempty"`
}

// ProjectAttachment 共享附件，项目以多对多引用，删除项目不删除附件
// swagger:model ProjectAttachment
type ProjectAttachment struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	File       string    `gorm:"size:255" json:"file"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
	Comments   string    `gorm:"type:text" json:"comments"`
	Tags       []Tag     `gorm:"many2many:attachment_tags" json:"tags,omitempty"`
}
