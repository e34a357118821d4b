package model

// Module 课程分节。order 与 duration 的非负约束落在存储层（CHECK 约束），
// 绕过输入校验的写入同样会被数据库拒绝。
// swagger:model Module
type Module struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title" binding:"required"`
	Slug        string `gorm:"size:220;uniqueIndex;<-:create" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	CourseID    uint   `gorm:"not null" json:"courseId" binding:"required"`
	Course      Course `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	QuizID      *uint  `json:"quizId"`
	Quiz        *Quiz  `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Order       int    `gorm:"column:sort_order;default:0;check:chk_modules_sort_order,sort_order >= 0" json:"order" binding:"omitempty,min=0"`
	Duration    int    `gorm:"default:0;check:chk_modules_duration,duration >= 0" json:"duration" binding:"omitempty,min=0"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`
}
