package service

import (
	"errors"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createProject(t *testing.T, db *gorm.DB, svc *ProjectService, ownerID uint) *model.Project {
	t.Helper()
	repo := repository.NewCRUDRepository[model.Project](db)
	project := &model.Project{
		Title:     "Platform revamp",
		OwnerID:   ownerID,
		StartDate: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		Duration:  6,
	}
	require.NoError(t, repo.Create(project, svc.BeforeCreateProject, svc.AfterCreateProject))
	return project
}

func TestCreateProjectFillsEndDateAndLogsActivity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner@example.com", "OWN1234567")

	project := createProject(t, db, svc, owner.ID)

	require.NotNil(t, project.EndDate)
	assert.Equal(t, project.StartDate.AddDate(0, 0, 42), *project.EndDate)

	var activity model.Activity
	require.NoError(t, db.First(&activity).Error)
	assert.Equal(t, model.ActivityCreatedProject, activity.ActivityType)
	assert.Equal(t, owner.ID, activity.UserID)
	require.NotNil(t, activity.ProjectID)
	assert.Equal(t, project.ID, *activity.ProjectID)
}

func TestCreateProjectWithInvalidDatesRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner@example.com", "OWN1234567")

	repo := repository.NewCRUDRepository[model.Project](db)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	project := &model.Project{
		Title:     "Impossible schedule",
		OwnerID:   owner.ID,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}

	err := repo.Create(project, svc.BeforeCreateProject, svc.AfterCreateProject)
	assert.True(t, errors.Is(err, model.ErrStartAfterEnd))

	var projects, activities int64
	db.Model(&model.Project{}).Count(&projects)
	db.Model(&model.Activity{}).Count(&activities)
	assert.Zero(t, projects)
	assert.Zero(t, activities)
}

func TestUpdateAndDeleteProjectLogActivity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner@example.com", "OWN1234567")

	repo := repository.NewCRUDRepository[model.Project](db)
	project := createProject(t, db, svc, owner.ID)

	project.Status = model.StatusCompleted
	require.NoError(t, repo.Save(project, svc.BeforeUpdateProject, svc.AfterUpdateProject))

	require.NoError(t, repo.Delete(project, nil, svc.AfterDeleteProject))

	var types []model.ActivityType
	require.NoError(t, db.Model(&model.Activity{}).Order("id ASC").Pluck("activity_type", &types).Error)
	assert.Equal(t, []model.ActivityType{
		model.ActivityCreatedProject,
		model.ActivityUpdatedProject,
		model.ActivityDeletedProject,
	}, types)
}

func TestTaskActivityActorFallsBackToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner@example.com", "OWN1234567")
	assignee := createTestUser(t, db, "dev@example.com", "DEV1234567")

	project := createProject(t, db, svc, owner.ID)

	taskRepo := repository.NewCRUDRepository[model.Task](db)

	assigned := &model.Task{ProjectID: project.ID, Title: "Design schema", AssignedToID: &assignee.ID}
	require.NoError(t, taskRepo.Create(assigned, nil, svc.AfterCreateTask))

	unassigned := &model.Task{ProjectID: project.ID, Title: "Write docs"}
	require.NoError(t, taskRepo.Create(unassigned, nil, svc.AfterCreateTask))

	var activities []model.Activity
	require.NoError(t, db.Where("task_id IS NOT NULL").Order("id ASC").Find(&activities).Error)
	require.Len(t, activities, 2)
	assert.Equal(t, assignee.ID, activities[0].UserID)
	assert.Equal(t, owner.ID, activities[1].UserID)
	assert.Equal(t, model.ActivityCreatedTask, activities[0].ActivityType)
}
