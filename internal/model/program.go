package model

// Program 顶层课程产品
// swagger:model Program
type Program struct {
	BaseModel
	Title       string  `gorm:"size:150;uniqueIndex;not null" json:"title" binding:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"size:255" json:"image"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	Duration    int     `gorm:"not null" json:"duration"` // 周
}

// ShortDescription 截取前500个字符，不加省略号
func (p *Program) ShortDescription() string {
	if len(p.Description) <= 500 {
		return p.Description
	}
	return p.Description[:500]
}
