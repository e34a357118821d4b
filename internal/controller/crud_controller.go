package controller

import (
	"errors"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CRUDHooks 资源生命周期钩子，在持久化事务内执行。
// 任一钩子返回错误则整个事务回滚。
type CRUDHooks[T any] struct {
	BeforeCreate func(tx *gorm.DB, obj *T) error
	AfterCreate  func(tx *gorm.DB, obj *T) error
	BeforeUpdate func(tx *gorm.DB, obj *T) error
	AfterUpdate  func(tx *gorm.DB, obj *T) error
	BeforeDelete func(tx *gorm.DB, obj *T) error
	AfterDelete  func(tx *gorm.DB, obj *T) error
}

// CRUDController 泛型资源控制器，所有资源共用同一份增删改查实现，
// 差异化行为全部通过 Hooks 注入。
type CRUDController[T any] struct {
	Repo  *repository.CRUDRepository[T]
	Hooks CRUDHooks[T]
	Cfg   *config.Config

	// FilterFields 允许作为查询参数过滤的列名
	FilterFields []string
}

func NewCRUDController[T any](repo *repository.CRUDRepository[T], cfg *config.Config) *CRUDController[T] {
	return &CRUDController[T]{Repo: repo, Cfg: cfg}
}

func (ctl *CRUDController[T]) WithHooks(hooks CRUDHooks[T]) *CRUDController[T] {
	ctl.Hooks = hooks
	return ctl
}

func (ctl *CRUDController[T]) WithFilters(fields ...string) *CRUDController[T] {
	ctl.FilterFields = fields
	return ctl
}

func (ctl *CRUDController[T]) pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ctl.Cfg.Pagination.PageSize)))
	if limit < 1 {
		limit = ctl.Cfg.Pagination.PageSize
	}
	if limit > ctl.Cfg.Pagination.MaxPageSize {
		limit = ctl.Cfg.Pagination.MaxPageSize
	}
	return page, limit
}

// isValidationError 业务校验错误与存储层 CHECK 约束都按 400 处理
func isValidationError(err error) bool {
	if errors.Is(err, model.ErrStartAfterEnd) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "CHECK constraint failed") || strings.Contains(msg, "Check constraint")
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// List godoc 返回分页列表，支持白名单字段过滤与 ordering 排序
func (ctl *CRUDController[T]) List(c *gin.Context) {
	page, limit := ctl.pagination(c)

	filters := make(map[string]interface{})
	for _, field := range ctl.FilterFields {
		if v, ok := c.GetQuery(field); ok {
			filters[field] = v
		}
	}

	ordering := c.Query("ordering")
	// ordering 白名单之外的值一律忽略，防注入
	if ordering != "" {
		column := strings.TrimPrefix(ordering, "-")
		allowed := column == "id" || column == "created_at" || column == "updated_at"
		for _, field := range ctl.FilterFields {
			if column == field {
				allowed = true
				break
			}
		}
		if !allowed {
			ordering = ""
		} else if strings.HasPrefix(ordering, "-") {
			ordering = column + " DESC"
		}
	}

	items, total, err := ctl.Repo.List(repository.ListQuery{
		Page:     page,
		Limit:    limit,
		Ordering: ordering,
		Filters:  filters,
	})
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (ctl *CRUDController[T]) Get(c *gin.Context) {
	id := util.MustParseUint(c.Param("id"))
	obj, err := ctl.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, obj)
}

func (ctl *CRUDController[T]) Create(c *gin.Context) {
	var obj T
	if err := c.ShouldBindJSON(&obj); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	err := ctl.Repo.Create(&obj, ctl.Hooks.BeforeCreate, ctl.Hooks.AfterCreate)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	util.Created(c, obj)
}

// Update 全量更新：先取出记录，再把请求体绑定到其上保存
func (ctl *CRUDController[T]) Update(c *gin.Context) {
	id := util.MustParseUint(c.Param("id"))
	obj, err := ctl.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	if err := c.ShouldBindJSON(obj); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	err = ctl.Repo.Save(obj, ctl.Hooks.BeforeUpdate, ctl.Hooks.AfterUpdate)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	util.Success(c, obj)
}

// Patch 部分更新，只改请求体中出现的字段
func (ctl *CRUDController[T]) Patch(c *gin.Context) {
	id := util.MustParseUint(c.Param("id"))
	obj, err := ctl.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	err = ctl.Repo.Patch(obj, fields, ctl.Hooks.BeforeUpdate, ctl.Hooks.AfterUpdate)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	// 局部更新后重读，响应体与库内状态保持一致
	updated, err := ctl.Repo.FindByID(id)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, updated)
}

func (ctl *CRUDController[T]) Delete(c *gin.Context) {
	id := util.MustParseUint(c.Param("id"))
	obj, err := ctl.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}

	err = ctl.Repo.Delete(obj, ctl.Hooks.BeforeDelete, ctl.Hooks.AfterDelete)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	util.NoContent(c)
}

func (ctl *CRUDController[T]) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProfileExists):
		util.Conflict(c, err.Error())
	case isDuplicateError(err):
		util.Conflict(c, "duplicate value violates a unique constraint")
	case isValidationError(err):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
