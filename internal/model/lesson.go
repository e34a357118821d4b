package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	ModuleID    uint   `gorm:"not null" json:"moduleId" binding:"required"`
	Module      Module `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Title       string `gorm:"size:255;not null" json:"title" binding:"required"`
	Content     string `gorm:"type:text" json:"content"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"`
	Duration    int    `gorm:"default:0" json:"duration"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`
}

// Video 课时视频。Duration 为上传时 ffprobe 探测结果（秒），探测失败时为 0。
// swagger:model Video
type Video struct {
	BaseModel
	LessonID    uint    `gorm:"not null" json:"lessonId"`
	Lesson      Lesson  `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	VideoFile   string  `gorm:"size:255" json:"videoFile"`
	Duration    float64 `gorm:"default:0" json:"duration"`
}

// swagger:model LessonFile
type LessonFile struct {
	BaseModel
	LessonID    uint   `gorm:"not null" json:"lessonId"`
	Lesson      Lesson `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	File        string `gorm:"size:255" json:"file"`
}

func (LessonFile) TableName() string {
	return "lesson_files"
}
