package models

import "time"

// Result is one graded submission. BandScore is always derived from Score by
// the scoring package, never set independently.
type Result struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Score     int       `json:"score" gorm:"not null"`
	BandScore float64   `json:"band_score" gorm:"not null"`
	TestDate  time.Time `json:"test_date" gorm:"autoCreateTime"`
}
