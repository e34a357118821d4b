package service

import (
	"errors"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMembershipService(db *gorm.DB) *MembershipService {
	return NewMembershipService(db, NewReferralService(db))
}

func TestCreateStudentSetsRoleFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := newMembershipService(db)
	repo := repository.NewCRUDRepository[model.Student](db)

	user := createTestUser(t, db, "student@example.com", "STU1234567")

	student := &model.Student{UserID: user.ID, LearningStyle: model.LearningStyleVisual}
	err := repo.Create(student, svc.BeforeCreateStudent, svc.AfterCreateStudent)
	require.NoError(t, err)

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.True(t, reloaded.IsStudent)
	assert.Equal(t, model.RoleStudent, reloaded.Role())
}

func TestDuplicateStudentProfileRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newMembershipService(db)
	repo := repository.NewCRUDRepository[model.Student](db)

	user := createTestUser(t, db, "student@example.com", "STU1234567")

	first := &model.Student{UserID: user.ID}
	require.NoError(t, repo.Create(first, svc.BeforeCreateStudent, svc.AfterCreateStudent))

	second := &model.Student{UserID: user.ID, Goals: "duplicate"}
	err := repo.Create(second, svc.BeforeCreateStudent, svc.AfterCreateStudent)
	assert.True(t, errors.Is(err, util.ErrProfileExists))

	var count int64
	db.Model(&model.Student{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteStudentCascadesToUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newMembershipService(db)
	repo := repository.NewCRUDRepository[model.Student](db)

	user := createTestUser(t, db, "student@example.com", "STU1234567")
	student := &model.Student{UserID: user.ID}
	require.NoError(t, repo.Create(student, svc.BeforeCreateStudent, svc.AfterCreateStudent))

	require.NoError(t, repo.Delete(student, nil, svc.AfterDeleteStudent))

	err := db.First(&model.Student{}, student.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = db.First(&model.User{}, user.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateInstructorSetsRoleFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := newMembershipService(db)
	repo := repository.NewCRUDRepository[model.Instructor](db)

	user := createTestUser(t, db, "teach@example.com", "INS1234567")
	instructor := &model.Instructor{UserID: user.ID, Bio: "decade of Go"}
	require.NoError(t, repo.Create(instructor, svc.BeforeCreateInstructor, svc.AfterCreateInstructor))

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.True(t, reloaded.IsInstructor)
}

func TestCreateClientLinksReferral(t *testing.T) {
	db := setupTestDB(t)
	svc := newMembershipService(db)
	repo := repository.NewCRUDRepository[model.Client](db)

	referrer := createTestUser(t, db, "referrer@example.com", "REF1234567")
	user := createTestUser(t, db, "client@example.com", "CLI1234567")

	client := &model.Client{UserID: user.ID, CompanyName: "Acme", ReferrerCode: "REF1234567"}
	require.NoError(t, repo.Create(client, svc.BeforeCreateClient, svc.AfterCreateClient))

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.True(t, reloaded.IsClient)

	var referral model.Referral
	require.NoError(t, db.First(&referral).Error)
	assert.Equal(t, referrer.ID, referral.ReferrerID)
}
