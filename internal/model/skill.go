package model

// TechSkill 共享技能标签，由多个实体多对多引用，删除引用方不删除技能本身
// swagger:model TechSkill
type TechSkill struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name" binding:"required"`
}

// swagger:model Tag
type Tag struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name" binding:"required"`
}
