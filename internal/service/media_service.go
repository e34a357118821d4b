package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MediaService 处理各类文件上传：头像、课程封面、视频、课件与项目附件
type MediaService struct {
	DB      *gorm.DB
	Storage *StorageService
}

func NewMediaService(db *gorm.DB, storage *StorageService) *MediaService {
	return &MediaService{DB: db, Storage: storage}
}

// objectName 生成 uuid 文件名，保留原扩展名
func objectName(prefix, original string) string {
	ext := filepath.Ext(original)
	return path.Join(prefix, uuid.New().String()+ext)
}

// datedObjectName 头像按 y/m/d 归档
func datedObjectName(prefix, original string) string {
	now := time.Now()
	ext := filepath.Ext(original)
	return path.Join(prefix,
		fmt.Sprintf("%d/%d/%d", now.Year(), now.Month(), now.Day()),
		uuid.New().String()+ext)
}

func (s *MediaService) upload(ctx context.Context, name string, file multipart.File, size int64, contentType string) (string, error) {
	return s.Storage.Upload(ctx, name, file, size, contentType)
}

var (
	imageMimeTypes = []string{"image/"}
	// 部分容器格式嗅探结果是 audio 或 octet-stream
	videoMimeTypes = []string{"video/", "audio/", "application/octet-stream"}
)

// checkMime 读文件头做深度 MIME 校验，通过后把读取位置拨回开头
func checkMime(file multipart.File, allowed []string) error {
	if _, err := util.ValidateMimeType(file, allowed); err != nil {
		return err
	}
	_, err := file.Seek(0, io.SeekStart)
	return err
}

// UploadAvatar 存储头像并尽量压成缩略图，压缩失败时回退原图
func (s *MediaService) UploadAvatar(ctx context.Context, userID uint, header *multipart.FileHeader) (string, error) {
	if err := util.ValidateExtension(header.Filename, util.AllowedImageExtensions); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := checkMime(file, imageMimeTypes); err != nil {
		return "", err
	}

	name := datedObjectName(util.PathProfilePictures, header.Filename)
	contentType := header.Header.Get("Content-Type")

	// 缩略图处理失败不阻断上传
	data, resized, thumbErr := util.ThumbnailImage(file, util.ThumbnailMaxSize)
	if thumbErr == nil && resized {
		url, err := s.Storage.Upload(ctx, name, bytes.NewReader(data), int64(len(data)), contentType)
		if err != nil {
			return "", err
		}
		return s.saveUserPicture(userID, url)
	}
	if thumbErr != nil {
		logger.Log.Warn("Avatar thumbnail generation failed", zap.Error(thumbErr))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	url, err := s.upload(ctx, name, file, header.Size, contentType)
	if err != nil {
		return "", err
	}
	return s.saveUserPicture(userID, url)
}

func (s *MediaService) saveUserPicture(userID uint, url string) (string, error) {
	var user model.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return "", err
	}

	// 旧头像不是默认图时尽量清掉，失败只记日志
	if user.HasCustomPicture() {
		if err := s.Storage.Delete(context.Background(), user.Picture); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn("Failed to remove old avatar", zap.String("picture", user.Picture), zap.Error(err))
		}
	}

	err := s.DB.Model(&user).Update("picture", url).Error
	return url, err
}

// UploadProgramImage 上传方向封面并写回记录
func (s *MediaService) UploadProgramImage(ctx context.Context, programID uint, header *multipart.FileHeader) (string, error) {
	if err := util.ValidateExtension(header.Filename, util.AllowedImageExtensions); err != nil {
		return "", err
	}

	var program model.Program
	if err := s.DB.First(&program, programID).Error; err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := checkMime(file, imageMimeTypes); err != nil {
		return "", err
	}

	name := objectName(util.PathProgramImages, header.Filename)
	url, err := s.upload(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	err = s.DB.Model(&program).Update("image", url).Error
	return url, err
}

// UploadCourseImage 上传课程封面，写入 CourseDetails
func (s *MediaService) UploadCourseImage(ctx context.Context, courseID uint, header *multipart.FileHeader) (string, error) {
	if err := util.ValidateExtension(header.Filename, util.AllowedImageExtensions); err != nil {
		return "", err
	}

	var course model.Course
	if err := s.DB.Preload("Details").First(&course, courseID).Error; err != nil {
		return "", err
	}
	if course.Details == nil {
		return "", gorm.ErrRecordNotFound
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := checkMime(file, imageMimeTypes); err != nil {
		return "", err
	}

	name := objectName(util.PathCourseImages, header.Filename)
	url, err := s.upload(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	err = s.DB.Model(course.Details).Update("image", url).Error
	return url, err
}

// UploadVideo 上传课时视频；时长探测是尽力而为，探测失败不影响上传
func (s *MediaService) UploadVideo(ctx context.Context, video *model.Video, header *multipart.FileHeader) error {
	if err := util.ValidateExtension(header.Filename, util.AllowedMediaExtensions); err != nil {
		return err
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	if err := checkMime(file, videoMimeTypes); err != nil {
		return err
	}

	name := objectName(util.PathVideos, header.Filename)
	url, err := s.upload(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return err
	}
	video.VideoFile = url

	if local, ok := s.Storage.Provider.(*LocalStorageProvider); ok {
		localPath := filepath.Join(local.Config.LocalPath, name)
		if info, probeErr := util.GetVideoInfo(localPath); probeErr == nil {
			video.Duration = info.Duration
		} else {
			logger.Log.Warn("Video probe failed", zap.String("file", name), zap.Error(probeErr))
		}
	}

	return s.DB.Create(video).Error
}

// UploadLessonFile 上传课件附件
func (s *MediaService) UploadLessonFile(ctx context.Context, lessonFile *model.LessonFile, header *multipart.FileHeader) error {
	if err := util.ValidateExtension(header.Filename, util.AllowedDocumentExtensions); err != nil {
		return err
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	name := objectName(util.PathLessonFiles, header.Filename)
	url, err := s.upload(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return err
	}
	lessonFile.File = url

	return s.DB.Create(lessonFile).Error
}

// UploadProjectAttachment 上传项目附件并挂到项目上
func (s *MediaService) UploadProjectAttachment(ctx context.Context, projectID uint, attachment *model.ProjectAttachment, header *multipart.FileHeader) error {
	if err := util.ValidateExtension(header.Filename, util.AllowedDocumentExtensions); err != nil {
		return err
	}

	var project model.Project
	if err := s.DB.First(&project, projectID).Error; err != nil {
		return err
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	name := objectName(util.PathProjectAttachments, header.Filename)
	url, err := s.upload(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return err
	}
	attachment.File = url
	if attachment.Name == "" {
		attachment.Name = header.Filename
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attachment).Error; err != nil {
			return err
		}
		return tx.Model(&project).Association("Attachments").Append(attachment)
	})
}
