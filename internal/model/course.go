package model

import (
	"time"
)

const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

// swagger:model CourseMetadata
type CourseMetadata struct {
	BaseModel
	Level       string  `gorm:"size:25" json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Rating      float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	Certificate bool    `gorm:"default:false" json:"certificate"`
}

// swagger:model CourseContent
type CourseContent struct {
	BaseModel
	Syllabus      string `gorm:"type:text" json:"syllabus"`
	Prerequisites string `gorm:"type:text" json:"prerequisites"`
}

// CourseDetails 课程的商务/运营信息
// swagger:model CourseDetails
type CourseDetails struct {
	BaseModel
	Image              string      `gorm:"size:255" json:"image"`
	Duration           int         `gorm:"default:12" json:"duration"`
	EnrollmentCount    int         `gorm:"default:0" json:"enrollmentCount"`
	EnrollmentDeadline *time.Time  `json:"enrollmentDeadline"`
	InstructorID       uint        `gorm:"not null" json:"instructorId"`
	Instructor         Instructor  `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ProgramID          uint        `gorm:"not null" json:"programId"`
	Program            Program     `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	ProjectID          uint        `gorm:"not null" json:"projectId"`
	Project            Project     `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Skills             []TechSkill `gorm:"many2many:course_details_skills" json:"skills,omitempty"`
}

// Course 的 metadata/content/details 三张附属表与课程同事务创建，
// 任一失败则整体回滚，不留孤行。slug 创建时由标题生成一次，之后冻结。
// swagger:model Course
type Course struct {
	BaseModel
	Title       string          `gorm:"size:200;not null" json:"title" binding:"required"`
	Slug        string          `gorm:"size:220;uniqueIndex;<-:create" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	IsPublished bool            `gorm:"default:false" json:"isPublished"`
	Active      bool            `gorm:"default:false" json:"active"`
	MetadataID  uint            `json:"metadataId"`
	Metadata    *CourseMetadata `gorm:"constraint:OnDelete:CASCADE" json:"metadata,omitempty"`
	ContentID   uint            `json:"contentId"`
	Content     *CourseContent  `gorm:"constraint:OnDelete:CASCADE" json:"content,omitempty"`
	DetailsID   uint            `json:"detailsId"`
	Details     *CourseDetails  `gorm:"constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

// ShortDescription 截取前200个字符并追加省略号
func (c *Course) ShortDescription() string {
	if len(c.Description) <= 200 {
		return c.Description + "..."
	}
	return c.Description[:200] + "..."
}
