package models

// QuestionRecord is one persisted knowledge-store row. The payload column
// carries the full question JSON and the embedding column a JSON array of
// 16 floats computed from the body text.
type QuestionRecord struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	QuestionID string `json:"question_id" gorm:"uniqueIndex;size:64;not null"`
	Body       string `json:"body" gorm:"not null"`
	Payload    string `json:"payload" gorm:"not null"`
	Embedding  string `json:"embedding" gorm:"not null"`
}

func (QuestionRecord) TableName() string {
	return "questions"
}
