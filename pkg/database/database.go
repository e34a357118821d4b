package database

import (
	"fmt"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 执行全量表结构迁移并写入种子数据
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Instructor{},
		&model.Client{},
		&model.Referral{},
		&model.TechSkill{},
		&model.Tag{},
		&model.Program{},
		&model.Course{},
		&model.CourseMetadata{},
		&model.CourseContent{},
		&model.CourseDetails{},
		&model.Module{},
		&model.Lesson{},
		&model.Video{},
		&model.LessonFile{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Enrollment{},
		&model.Project{},
		&model.Task{},
		&model.ProjectAttachment{},
		&model.Activity{},
	)
	if err != nil {
		return err
	}

	// 默认技术栈标签
	var count int64
	db.Model(&model.TechSkill{}).Count(&count)
	if count == 0 {
		defaultSkills := []string{
			"Python", "JavaScript", "Go", "SQL",
			"React", "Django", "Docker", "Linux",
		}
		for _, name := range defaultSkills {
			db.Create(&model.TechSkill{Name: name})
		}
	}

	return nil
}
