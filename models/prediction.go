package models

import "time"

// Prediction is one immutable forecast record for a planned or past
// social-media post. Rows are insert-only; there is no update path.
type Prediction struct {
	ID                     string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Caption                string    `gorm:"column:caption;type:text;not null" json:"caption"`
	Content                string    `gorm:"column:content;type:text;not null;default:''" json:"content"`
	Platform               string    `gorm:"column:platform;size:50;not null" json:"platform"`
	PostDate               string    `gorm:"column:post_date;type:date;not null" json:"post_date"`
	PostTime               string    `gorm:"column:post_time;type:time;not null" json:"post_time"`
	Followers              int64     `gorm:"column:followers;not null;default:0" json:"followers"`
	AdBoost                bool      `gorm:"column:ad_boost;not null;default:false" json:"ad_boost"`
	PredLikes              float64   `gorm:"column:pred_likes;type:decimal(12,2);not null;default:0" json:"pred_likes"`
	PredComments           float64   `gorm:"column:pred_comments;type:decimal(12,2);not null;default:0" json:"pred_comments"`
	PredShares             float64   `gorm:"column:pred_shares;type:decimal(12,2);not null;default:0" json:"pred_shares"`
	PredClicks             float64   `gorm:"column:pred_clicks;type:decimal(12,2);not null;default:0" json:"pred_clicks"`
	PredTimingQualityScore float64   `gorm:"column:pred_timing_quality_score;type:decimal(10,4);not null;default:0" json:"pred_timing_quality_score"`
	CreatedAt              time.Time `gorm:"column:created_at;not null;index:idx_predictions_created_at,sort:desc" json:"created_at"`
}

func (Prediction) TableName() string { return "predictions" }
