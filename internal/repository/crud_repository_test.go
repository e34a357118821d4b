package repository

import (
	"fmt"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCRUDRepositoryListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCRUDRepository[model.Quiz](db)

	for i := 1; i <= 25; i++ {
		require.NoError(t, db.Create(&model.Quiz{Title: fmt.Sprintf("Quiz %02d", i)}).Error)
	}

	items, total, err := repo.List(ListQuery{Page: 2, Limit: 10, Ordering: "id"})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, items, 10)
	assert.Equal(t, "Quiz 11", items[0].Title)

	items, total, err = repo.List(ListQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, items, 5)
}

func TestCRUDRepositoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCRUDRepository[model.Lesson](db)

	require.NoError(t, db.Create(&model.Lesson{ModuleID: 1, Title: "A", IsPublished: true}).Error)
	require.NoError(t, db.Create(&model.Lesson{ModuleID: 1, Title: "B"}).Error)
	require.NoError(t, db.Create(&model.Lesson{ModuleID: 2, Title: "C", IsPublished: true}).Error)

	items, total, err := repo.List(ListQuery{
		Limit:   10,
		Page:    1,
		Filters: map[string]interface{}{"module_id": 1},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)
}

func TestCRUDRepositoryPatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCRUDRepository[model.Quiz](db)

	quiz := &model.Quiz{Title: "Before", Description: "keep me"}
	require.NoError(t, repo.Create(quiz, nil, nil))

	require.NoError(t, repo.Patch(quiz, map[string]interface{}{"title": "After"}, nil, nil))

	reloaded, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", reloaded.Title)
	assert.Equal(t, "keep me", reloaded.Description)
}

func TestModuleChecksRejectNegativeValues(t *testing.T) {
	db := setupTestDB(t)

	course := &model.Course{Title: "Host", Slug: "host"}
	require.NoError(t, db.Create(course).Error)

	// sort_order 与 duration 的非负约束由存储层强制
	err := db.Create(&model.Module{CourseID: course.ID, Title: "Bad order", Slug: "bad-order", Order: -1}).Error
	assert.Error(t, err)

	err = db.Create(&model.Module{CourseID: course.ID, Title: "Bad duration", Slug: "bad-duration", Duration: -5}).Error
	assert.Error(t, err)

	require.NoError(t, db.Create(&model.Module{CourseID: course.ID, Title: "Fine", Slug: "fine", Order: 3, Duration: 10}).Error)
}

func TestEnrollmentOfferingUniqueness(t *testing.T) {
	db := setupTestDB(t)

	user := &model.User{Username: "s", Email: "s@example.com", Password: "x", ReferralCode: "SSS1234567"}
	require.NoError(t, db.Create(user).Error)
	student := &model.Student{UserID: user.ID}
	require.NoError(t, db.Create(student).Error)

	course := &model.Course{Title: "C", Slug: "c"}
	require.NoError(t, db.Create(course).Error)
	program := &model.Program{Title: "P", Duration: 12}
	require.NoError(t, db.Create(program).Error)

	// NULL 列不参与唯一性判定，约束只对完整三元组生效
	first := &model.Enrollment{StudentID: student.ID, CourseID: &course.ID, ProgramID: &program.ID}
	require.NoError(t, db.Create(first).Error)

	dup := &model.Enrollment{StudentID: student.ID, CourseID: &course.ID, ProgramID: &program.ID}
	assert.Error(t, db.Create(dup).Error)

	// 同一学员报另一门课没问题
	other := &model.Course{Title: "D", Slug: "d"}
	require.NoError(t, db.Create(other).Error)
	second := &model.Enrollment{StudentID: student.ID, CourseID: &other.ID, ProgramID: &program.ID}
	assert.NoError(t, db.Create(second).Error)
}

func TestUserRepositoryListExcludesSuperusers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, db.Create(&model.User{Username: "root", Email: "root@example.com", Password: "x", IsSuperuser: true, ReferralCode: "ROO1234567"}).Error)
	require.NoError(t, db.Create(&model.User{Username: "student", Email: "stu@example.com", Password: "x", IsStudent: true, ReferralCode: "STU1234567"}).Error)
	require.NoError(t, db.Create(&model.User{Username: "client", Email: "cli@example.com", Password: "x", IsClient: true, ReferralCode: "CLI1234567"}).Error)

	users, total, err := repo.List(UserFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, u := range users {
		assert.False(t, u.IsSuperuser)
	}

	students, total, err := repo.List(UserFilter{Role: model.RoleStudent, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "student", students[0].Username)

	matched, _, err := repo.List(UserFilter{Search: "cli", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "client", matched[0].Username)
}
