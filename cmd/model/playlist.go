package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id"`
	UserId      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// 收藏夹中的视频 同一个视频在一个收藏夹中只能出现一次
type PlaylistVideo struct {
	PlaylistVideoId int64     `json:"playlist_video_id"`
	PlaylistId      int64     `json:"playlist_id"`
	VideoId         int64     `json:"video_id"`
	Position        int64     `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}
