package controller

import (
	"errors"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MediaController 带文件体的创建端点，multipart 表单不走通用 CRUD
type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

func (ctl *MediaController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidExtension):
		util.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(c)
	default:
		util.LogInternalError(c, err)
	}
}

// UploadVideo godoc
// @Summary 上传课时视频
// @Description 存储视频文件并尽量探测时长
// @Tags 媒体
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   lesson_id formData int true "课时ID"
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   video formData file true "视频文件"
// @Success 201 {object} util.Response{data=model.Video}
// @Failure 400 {object} util.Response "不支持的文件类型"
// @Router /api/videos/upload [post]
func (ctl *MediaController) UploadVideo(c *gin.Context) {
	header, err := c.FormFile("video")
	if err != nil {
		util.BadRequest(c, "video file is required")
		return
	}

	video := &model.Video{
		LessonID:    util.MustParseUint(c.PostForm("lesson_id")),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if video.LessonID == 0 || video.Title == "" {
		util.BadRequest(c, "lesson_id and title are required")
		return
	}

	if err := ctl.MediaService.UploadVideo(c.Request.Context(), video, header); err != nil {
		ctl.writeError(c, err)
		return
	}

	util.Created(c, video)
}

// UploadLessonFile godoc
// @Summary 上传课件附件
// @Tags 媒体
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   lesson_id formData int true "课时ID"
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   file formData file true "课件文件"
// @Success 201 {object} util.Response{data=model.LessonFile}
// @Failure 400 {object} util.Response "不支持的文件类型"
// @Router /api/files/upload [post]
func (ctl *MediaController) UploadLessonFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	lessonFile := &model.LessonFile{
		LessonID:    util.MustParseUint(c.PostForm("lesson_id")),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if lessonFile.LessonID == 0 || lessonFile.Title == "" {
		util.BadRequest(c, "lesson_id and title are required")
		return
	}

	if err := ctl.MediaService.UploadLessonFile(c.Request.Context(), lessonFile, header); err != nil {
		ctl.writeError(c, err)
		return
	}

	util.Created(c, lessonFile)
}

// UploadProjectAttachment godoc
// @Summary 上传项目附件
// @Description 附件创建后挂到指定项目，附件本身可被多个项目共享
// @Tags 媒体
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "项目ID"
// @Param   name formData string false "附件名，缺省用文件名"
// @Param   comments formData string false "备注"
// @Param   file formData file true "附件文件"
// @Success 201 {object} util.Response{data=model.ProjectAttachment}
// @Failure 400 {object} util.Response "不支持的文件类型"
// @Failure 404 {object} util.Response "项目不存在"
// @Router /api/projects/{id}/attachments [post]
func (ctl *MediaController) UploadProjectAttachment(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	attachment := &model.ProjectAttachment{
		Name:     c.PostForm("name"),
		Comments: c.PostForm("comments"),
	}

	projectID := util.MustParseUint(c.Param("id"))
	if err := ctl.MediaService.UploadProjectAttachment(c.Request.Context(), projectID, attachment, header); err != nil {
		ctl.writeError(c, err)
		return
	}

	util.Created(c, attachment)
}
