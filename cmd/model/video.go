package model

import "time"

type Video struct {
	VideoId     int64     `json:"video_id"`
	UserId      int64     `json:"user_id"`
	VideoUrl    string    `json:"video_url"`
	CoverUrl    string    `json:"cover_url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	VisitCount  int64     `json:"visit_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
