package controller

import (
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health godoc
// @Summary 健康检查
// @Tags 系统
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/health [get]
func (ctl *HealthController) Health(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := ctl.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	util.Success(c, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
