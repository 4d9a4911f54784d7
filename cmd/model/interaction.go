package model

import "time"

type Comment struct {
	CommentId int64     `json:"comment_id"`
	VideoId   int64     `json:"video_id"`
	UserId    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like 的目标列(VideoId/CommentId/TweetId)有且仅有一个非零
// (目标, UserId)的唯一性由toggle逻辑保证 而非数据库约束
type Like struct {
	LikeId    int64     `json:"like_id"`
	UserId    int64     `json:"user_id"`
	VideoId   int64     `json:"video_id"`
	CommentId int64     `json:"comment_id"`
	TweetId   int64     `json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`
}
