package service

import (
	"context"
	"encoding/json"
	"fmt"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	programListCacheKey = "catalog:programs:active"
	catalogCacheTTL     = 10 * time.Minute
)

// CatalogService 课程目录：slug 生成、发布态查询与 Redis 缓存
type CatalogService struct {
	DB          *gorm.DB
	CatalogRepo *repository.CatalogRepository
	Redis       *redis.Client
}

func NewCatalogService(db *gorm.DB, catalogRepo *repository.CatalogRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{DB: db, CatalogRepo: catalogRepo, Redis: rdb}
}

// uniqueSlug 由标题派生 slug，冲突时追加数字后缀
func uniqueSlug(title string, exists func(slug string) (bool, error)) (string, error) {
	base := util.Slugify(title)
	if base == "" {
		base = "untitled"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// BeforeCreateCourse 创建时计算一次 slug，之后不再随标题变化
func (s *CatalogService) BeforeCreateCourse(tx *gorm.DB, course *model.Course) error {
	if course.Slug != "" {
		return nil
	}
	slug, err := uniqueSlug(course.Title, func(slug string) (bool, error) {
		return repository.CourseSlugExists(tx, slug, 0)
	})
	if err != nil {
		return err
	}
	course.Slug = slug
	return nil
}

func (s *CatalogService) BeforeCreateModule(tx *gorm.DB, mod *model.Module) error {
	if mod.Slug != "" {
		return nil
	}
	slug, err := uniqueSlug(mod.Title, func(slug string) (bool, error) {
		return repository.ModuleSlugExists(tx, slug, 0)
	})
	if err != nil {
		return err
	}
	mod.Slug = slug
	return nil
}

func deleteLessonChildren(tx *gorm.DB, lessonIDs []uint) error {
	if len(lessonIDs) == 0 {
		return nil
	}
	if err := tx.Where("lesson_id IN ?", lessonIDs).Delete(&model.Video{}).Error; err != nil {
		return err
	}
	return tx.Where("lesson_id IN ?", lessonIDs).Delete(&model.LessonFile{}).Error
}

func deleteModuleChildren(tx *gorm.DB, moduleIDs []uint) error {
	if len(moduleIDs) == 0 {
		return nil
	}
	var lessonIDs []uint
	if err := tx.Model(&model.Lesson{}).Where("module_id IN ?", moduleIDs).Pluck("id", &lessonIDs).Error; err != nil {
		return err
	}
	if err := deleteLessonChildren(tx, lessonIDs); err != nil {
		return err
	}
	if len(lessonIDs) > 0 {
		if err := tx.Where("id IN ?", lessonIDs).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// AfterDeleteCourse 目录树向下级联：模块、课时及其媒体、附属三表随课程一起删除
func (s *CatalogService) AfterDeleteCourse(tx *gorm.DB, course *model.Course) error {
	var moduleIDs []uint
	if err := tx.Model(&model.Module{}).Where("course_id = ?", course.ID).Pluck("id", &moduleIDs).Error; err != nil {
		return err
	}
	if err := deleteModuleChildren(tx, moduleIDs); err != nil {
		return err
	}
	if len(moduleIDs) > 0 {
		if err := tx.Where("id IN ?", moduleIDs).Delete(&model.Module{}).Error; err != nil {
			return err
		}
	}

	if course.MetadataID != 0 {
		if err := tx.Delete(&model.CourseMetadata{}, course.MetadataID).Error; err != nil {
			return err
		}
	}
	if course.ContentID != 0 {
		if err := tx.Delete(&model.CourseContent{}, course.ContentID).Error; err != nil {
			return err
		}
	}
	if course.DetailsID != 0 {
		if err := tx.Delete(&model.CourseDetails{}, course.DetailsID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *CatalogService) AfterDeleteModule(tx *gorm.DB, mod *model.Module) error {
	return deleteModuleChildren(tx, []uint{mod.ID})
}

func (s *CatalogService) AfterDeleteLesson(tx *gorm.DB, lesson *model.Lesson) error {
	return deleteLessonChildren(tx, []uint{lesson.ID})
}

func (s *CatalogService) AfterDeleteQuiz(tx *gorm.DB, quiz *model.Quiz) error {
	var questionIDs []uint
	if err := tx.Model(&model.Question{}).Where("quiz_id = ?", quiz.ID).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) == 0 {
		return nil
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Answer{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error
}

// InvalidateProgramCache 目录变更后清缓存；Redis 未配置时为空操作
func (s *CatalogService) InvalidateProgramCache(tx *gorm.DB, _ *model.Program) error {
	if s.Redis == nil {
		return nil
	}
	if err := s.Redis.Del(context.Background(), programListCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate program cache", zap.Error(err))
	}
	return nil
}

// ListActivePrograms 活跃方向列表，带 Redis 缓存
func (s *CatalogService) ListActivePrograms(ctx context.Context) ([]model.Program, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, programListCacheKey).Result()
		if err == nil {
			var programs []model.Program
			if jsonErr := json.Unmarshal([]byte(cached), &programs); jsonErr == nil {
				return programs, nil
			}
		}
	}

	var programs []model.Program
	if err := s.DB.Where("is_active = ?", true).Order("id ASC").Find(&programs).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(programs); err == nil {
			s.Redis.Set(ctx, programListCacheKey, data, catalogCacheTTL)
		}
	}

	return programs, nil
}

func (s *CatalogService) GetCourseBySlug(slug string) (*model.Course, error) {
	return s.CatalogRepo.FindCourseBySlug(slug)
}

func (s *CatalogService) ListPublishedCourses() ([]model.Course, error) {
	return s.CatalogRepo.ListPublishedCourses()
}
