package service

import (
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"

	"gorm.io/gorm"
)

// ProjectService 项目/任务生命周期：结束日期推算、日期校验与活动流记录
type ProjectService struct {
	DB *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{DB: db}
}

func recordProjectActivity(tx *gorm.DB, project *model.Project, activityType model.ActivityType) error {
	return repository.Record(tx, &model.Activity{
		UserID:       project.OwnerID,
		ProjectID:    &project.ID,
		ActivityType: activityType,
	})
}

func (s *ProjectService) BeforeCreateProject(tx *gorm.DB, project *model.Project) error {
	project.FillEndDate()
	return project.Validate()
}

func (s *ProjectService) AfterCreateProject(tx *gorm.DB, project *model.Project) error {
	return recordProjectActivity(tx, project, model.ActivityCreatedProject)
}

func (s *ProjectService) BeforeUpdateProject(tx *gorm.DB, project *model.Project) error {
	project.FillEndDate()
	return project.Validate()
}

func (s *ProjectService) AfterUpdateProject(tx *gorm.DB, project *model.Project) error {
	return recordProjectActivity(tx, project, model.ActivityUpdatedProject)
}

// AfterDeleteProject 级联删任务后记录活动，活动行引用的项目ID保留
func (s *ProjectService) AfterDeleteProject(tx *gorm.DB, project *model.Project) error {
	if err := tx.Where("project_id = ?", project.ID).Delete(&model.Task{}).Error; err != nil {
		return err
	}
	return recordProjectActivity(tx, project, model.ActivityDeletedProject)
}

func taskActor(tx *gorm.DB, task *model.Task) (uint, error) {
	if task.AssignedToID != nil {
		return *task.AssignedToID, nil
	}
	// 未指派时落到项目负责人
	var project model.Project
	if err := tx.Unscoped().First(&project, task.ProjectID).Error; err != nil {
		return 0, err
	}
	return project.OwnerID, nil
}

func recordTaskActivity(tx *gorm.DB, task *model.Task, activityType model.ActivityType) error {
	actor, err := taskActor(tx, task)
	if err != nil {
		return err
	}
	return repository.Record(tx, &model.Activity{
		UserID:       actor,
		ProjectID:    &task.ProjectID,
		TaskID:       &task.ID,
		ActivityType: activityType,
	})
}

func (s *ProjectService) AfterCreateTask(tx *gorm.DB, task *model.Task) error {
	return recordTaskActivity(tx, task, model.ActivityCreatedTask)
}

func (s *ProjectService) AfterUpdateTask(tx *gorm.DB, task *model.Task) error {
	return recordTaskActivity(tx, task, model.ActivityUpdatedTask)
}

func (s *ProjectService) AfterDeleteTask(tx *gorm.DB, task *model.Task) error {
	return recordTaskActivity(tx, task, model.ActivityDeletedTask)
}
