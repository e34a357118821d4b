package model

import (
	"time"
)

type ActivityType string

const (
	ActivityCreatedProject ActivityType = "created_project"
	ActivityUpdatedProject ActivityType = "updated_project"
	ActivityDeletedProject ActivityType = "deleted_project"
	ActivityCreatedTask    ActivityType = "created_task"
	ActivityUpdatedTask    ActivityType = "updated_task"
	ActivityDeletedTask    ActivityType = "deleted_task"
)

// Activity 项目/任务生命周期的审计记录，只追加，API 上只读
// swagger:model Activity
type Activity struct {
	BaseModel
	UserID       uint         `gorm:"not null" json:"userId"`
	User         User         `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ProjectID    *uint        `json:"projectId"`
	Project      *Project     `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	TaskID       *uint        `json:"taskId"`
	Task         *Task        `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ActivityType ActivityType `gorm:"size:50;not null" json:"activityType"`
	DateCreated  time.Time    `gorm:"autoCreateTime" json:"dateCreated"`
}

func (Activity) TableName() string {
	return "activities"
}
