package controller

import (
	"errors"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController 目录的专用读取端点，通用 CRUD 覆盖不到的部分
type CatalogController struct {
	CatalogService *service.CatalogService
	MediaService   *service.MediaService
}

func NewCatalogController(catalogService *service.CatalogService, mediaService *service.MediaService) *CatalogController {
	return &CatalogController{CatalogService: catalogService, MediaService: mediaService}
}

// ListActivePrograms godoc
// @Summary 活跃学习方向列表
// @Description 匿名可访问，结果带缓存
// @Tags 目录
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Program}
// @Router /api/programs/active [get]
func (ctl *CatalogController) ListActivePrograms(c *gin.Context) {
	programs, err := ctl.CatalogService.ListActivePrograms(c.Request.Context())
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, programs)
}

// GetCourseBySlug godoc
// @Summary 按 slug 查询课程
// @Tags 目录
// @Produce  json
// @Param   slug path string true "课程 slug"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/slug/{slug} [get]
func (ctl *CatalogController) GetCourseBySlug(c *gin.Context) {
	course, err := ctl.CatalogService.GetCourseBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, course)
}

// ListPublishedCourses godoc
// @Summary 已发布课程列表
// @Tags 目录
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/published [get]
func (ctl *CatalogController) ListPublishedCourses(c *gin.Context) {
	courses, err := ctl.CatalogService.ListPublishedCourses()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, courses)
}

// UploadProgramImage godoc
// @Summary 上传方向封面
// @Tags 目录
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "方向ID"
// @Param   image formData file true "封面图片"
// @Success 200 {object} util.Response{data=object}
// @Router /api/programs/{id}/image [post]
func (ctl *CatalogController) UploadProgramImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		util.BadRequest(c, "image file is required")
		return
	}

	url, err := ctl.MediaService.UploadProgramImage(c.Request.Context(), util.MustParseUint(c.Param("id")), header)
	if err != nil {
		ctl.writeUploadError(c, err)
		return
	}
	util.Success(c, gin.H{"image": url})
}

// UploadCourseImage godoc
// @Summary 上传课程封面
// @Tags 目录
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Param   image formData file true "封面图片"
// @Success 200 {object} util.Response{data=object}
// @Router /api/courses/{id}/image [post]
func (ctl *CatalogController) UploadCourseImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		util.BadRequest(c, "image file is required")
		return
	}

	url, err := ctl.MediaService.UploadCourseImage(c.Request.Context(), util.MustParseUint(c.Param("id")), header)
	if err != nil {
		ctl.writeUploadError(c, err)
		return
	}
	util.Success(c, gin.H{"image": url})
}

func (ctl *CatalogController) writeUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidExtension):
		util.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(c)
	default:
		util.LogInternalError(c, err)
	}
}
