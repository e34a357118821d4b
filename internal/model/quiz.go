package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
	TotalMarks  int    `gorm:"default:0" json:"totalMarks"`
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID        uint   `gorm:"not null" json:"quizId" binding:"required"`
	Quiz          Quiz   `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Text          string `gorm:"type:text;not null" json:"text" binding:"required"`
	CorrectAnswer string `gorm:"type:text" json:"correctAnswer"`
	Marks         int    `gorm:"default:1" json:"marks"`
}

// swagger:model Answer
type Answer struct {
	BaseModel
	QuestionID uint     `gorm:"not null" json:"questionId" binding:"required"`
	Question   Question `gorm:"constraint:OnDelete:CASCADE" json:"-" binding:"-"`
	Text       string   `gorm:"size:200;not null" json:"text" binding:"required"`
	IsCorrect  bool     `gorm:"default:false" json:"isCorrect"`
}
