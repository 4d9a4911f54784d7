package service

import (
	"time"

	"PlayTube.com/pkg/projector"
)

// VideoInfo 视频的响应视图 所有者只暴露子档案
type VideoInfo struct {
	VideoId     int64            `json:"video_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	VideoUrl    string           `json:"video_url"`
	CoverUrl    string           `json:"cover_url"`
	Duration    float64          `json:"duration"`
	VisitCount  int64            `json:"visit_count"`
	IsPublished bool             `json:"is_published"`
	Owner       *projector.Owner `json:"owner"`
	LikesCount  int64            `json:"likes_count"`
	IsLiked     bool             `json:"is_liked"`
	CreatedAt   time.Time        `json:"created_at"`
}

// VideoList 列表响应 空结果时Total为0 Videos为空数组而非null
type VideoList struct {
	Videos   []*VideoInfo `json:"videos"`
	Total    int64        `json:"total"`
	PageNum  int64        `json:"page_num"`
	PageSize int64        `json:"page_size"`
}
