package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/cache"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/toggle"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleVideoLike 每次调用翻转一次点赞状态 返回翻转后是否点赞
// 重试会把状态翻回去 这是开关语义 调用方需要知晓
func (service *LikeService) ToggleVideoLike(videoId, userId int64) (bool, error) {
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return false, errno.RecordNotFoundErr.WithMessage("Video not found")
	}

	existing, err := db.GetVideoLike(service.ctx, videoId, userId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetVideoLike failed")
	}
	liked, err := service.apply(existing, &model.Like{
		LikeId:    utils.GenerateId(),
		UserId:    userId,
		VideoId:   videoId,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return false, err
	}

	// 点赞数缓存失效 下次读取回源
	cache.NewCounterCacheManager(cache.Client()).InvalidateVideoLikeCount(service.ctx, videoId)
	return liked, nil
}

func (service *LikeService) ToggleCommentLike(commentId, userId int64) (bool, error) {
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetComment failed")
	}
	if comment == nil {
		return false, errno.RecordNotFoundErr.WithMessage("Comment not found")
	}

	existing, err := db.GetCommentLike(service.ctx, commentId, userId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetCommentLike failed")
	}
	return service.apply(existing, &model.Like{
		LikeId:    utils.GenerateId(),
		UserId:    userId,
		CommentId: commentId,
		CreatedAt: time.Now(),
	})
}

func (service *LikeService) ToggleTweetLike(tweetId, userId int64) (bool, error) {
	tweet, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetTweet failed")
	}
	if tweet == nil {
		return false, errno.RecordNotFoundErr.WithMessage("Tweet not found")
	}

	existing, err := db.GetTweetLike(service.ctx, tweetId, userId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetTweetLike failed")
	}
	return service.apply(existing, &model.Like{
		LikeId:    utils.GenerateId(),
		UserId:    userId,
		TweetId:   tweetId,
		CreatedAt: time.Now(),
	})
}

// apply 根据当前状态执行Attach或Detach
func (service *LikeService) apply(existing *model.Like, fresh *model.Like) (bool, error) {
	current := toggle.Absent
	if existing != nil {
		current = toggle.Present
	}
	op, next := toggle.Next(current)
	switch op {
	case toggle.Attach:
		if err := db.CreateLike(service.ctx, fresh); err != nil {
			return false, errors.WithMessage(err, "dao.CreateLike failed")
		}
	case toggle.Detach:
		if err := db.DeleteLike(service.ctx, existing.LikeId); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteLike failed")
		}
	}
	return next == toggle.Present, nil
}
