package controller

import (
	"errors"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService     *service.UserService
	MediaService    *service.MediaService
	ReferralService *service.ReferralService
	ActivityRepo    *repository.ActivityRepository
	Cfg             *config.Config
}

func NewUserController(userService *service.UserService, mediaService *service.MediaService, referralService *service.ReferralService, activityRepo *repository.ActivityRepository, cfg *config.Config) *UserController {
	return &UserController{UserService: userService, MediaService: mediaService, ReferralService: referralService, ActivityRepo: activityRepo, Cfg: cfg}
}

// GetUsers godoc
// @Summary 用户列表
// @Description 支持按角色与关键词过滤，超级管理员不在列表中
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Param   role query string false "角色过滤" Enums(student, instructor, client)
// @Param   search query string false "按用户名/邮箱/姓名模糊匹配"
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/users [get]
func (ctl *UserController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ctl.Cfg.Pagination.PageSize)))
	if limit < 1 {
		limit = ctl.Cfg.Pagination.PageSize
	}
	if limit > ctl.Cfg.Pagination.MaxPageSize {
		limit = ctl.Cfg.Pagination.MaxPageSize
	}

	filter := repository.UserFilter{
		Role:   model.UserRole(c.Query("role")),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := ctl.UserService.List(filter)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetUser godoc
// @Summary 查询单个用户
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{id} [get]
func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.UserService.GetByID(util.MustParseUint(c.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, user)
}

// UpdateUserRequest 可修改的资料字段
type UpdateUserRequest struct {
	Username   *string `json:"username"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Gender     *string `json:"gender" binding:"omitempty,oneof=M F O"`
	Phone      *string `json:"phone"`
	Country    *string `json:"country"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Address    *string `json:"address"`
	Newsletter *bool   `json:"newsletter"`
}

// UpdateUser godoc
// @Summary 更新用户资料
// @Description 仅允许修改资料字段，角色位与推荐码不可改
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Param   body body UpdateUserRequest true "资料字段"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{id} [put]
func (ctl *UserController) UpdateUser(c *gin.Context) {
	user, err := ctl.UserService.GetByID(util.MustParseUint(c.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.PostalCode != nil {
		user.PostalCode = *req.PostalCode
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Newsletter != nil {
		user.Newsletter = *req.Newsletter
	}

	if err := ctl.UserService.Update(user); err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, user)
}

// DeleteUser godoc
// @Summary 删除用户
// @Tags 用户
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{id} [delete]
func (ctl *UserController) DeleteUser(c *gin.Context) {
	if err := ctl.UserService.Delete(util.MustParseUint(c.Param("id"))); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}
	util.NoContent(c)
}

// GetUserActivities godoc
// @Summary 用户最近的活动流
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Param   limit query int false "最多返回条数"
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/users/{id}/activities [get]
func (ctl *UserController) GetUserActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > ctl.Cfg.Pagination.MaxPageSize {
		limit = 20
	}

	activities, err := ctl.ActivityRepo.ListByUser(util.MustParseUint(c.Param("id")), limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, activities)
}

// GetUserReferrals godoc
// @Summary 用户名下的推荐记录
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.Referral}
// @Router /api/users/{id}/referrals [get]
func (ctl *UserController) GetUserReferrals(c *gin.Context) {
	referrals, err := ctl.ReferralService.ListReferrals(util.MustParseUint(c.Param("id")))
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, referrals)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 头像按日期归档存储并生成缩略图
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户ID"
// @Param   picture formData file true "头像图片"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "不支持的文件类型"
// @Router /api/users/{id}/avatar [post]
func (ctl *UserController) UploadAvatar(c *gin.Context) {
	header, err := c.FormFile("picture")
	if err != nil {
		util.BadRequest(c, "picture file is required")
		return
	}

	url, err := ctl.MediaService.UploadAvatar(c.Request.Context(), util.MustParseUint(c.Param("id")), header)
	if err != nil {
		if errors.Is(err, util.ErrInvalidExtension) {
			util.BadRequest(c, err.Error())
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	util.Success(c, gin.H{"picture": url})
}
