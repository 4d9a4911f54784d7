package model

import "time"

type User struct {
	UserId    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	AvatarUrl string    `json:"avatar_url"`
	CoverUrl  string    `json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 用户观看历史 (user_id, video_id)唯一 重复观看只更新WatchTime
type WatchHistory struct {
	WatchHistoryId int64     `json:"watch_history_id"`
	UserId         int64     `json:"user_id" gorm:"index:idx_user_video,unique"`
	VideoId        int64     `json:"video_id" gorm:"index:idx_user_video,unique"`
	WatchTime      time.Time `json:"watch_time"`
}

func (WatchHistory) TableName() string {
	return "user_watch_histories"
}
