package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/pkg/cache"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/mq"
	"PlayTube.com/pkg/projector"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// VideoDetail 单视频投影 点赞数走redis读穿缓存
// 播放数+1和观看历史写入通过MQ异步完成 发布失败只记录日志 不影响响应
func (v *VideoDetailService) VideoDetail(videoId, viewerId int64) (*VideoInfo, error) {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.RecordNotFoundErr
	}

	owner, err := db.GetUser(v.ctx, video.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}

	counter := cache.NewCounterCacheManager(cache.Client())
	likesCount, ok := counter.GetVideoLikeCount(v.ctx, videoId)
	if !ok {
		likesCount, err = db.CountVideoLikes(v.ctx, videoId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.CountVideoLikes failed")
		}
		counter.SetVideoLikeCount(v.ctx, videoId, likesCount)
	}

	isLiked := false
	if viewerId > 0 {
		like, err := db.GetVideoLike(v.ctx, videoId, viewerId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetVideoLike failed")
		}
		isLiked = like != nil
	}

	v.publishViewEvent(videoId, viewerId)

	return &VideoInfo{
		VideoId:     video.VideoId,
		Title:       video.Title,
		Description: video.Description,
		VideoUrl:    video.VideoUrl,
		CoverUrl:    video.CoverUrl,
		Duration:    video.Duration,
		VisitCount:  video.VisitCount,
		IsPublished: video.IsPublished,
		Owner:       projector.ProjectOwner(owner),
		LikesCount:  likesCount,
		IsLiked:     isLiked,
		CreatedAt:   video.CreatedAt,
	}, nil
}

func (v *VideoDetailService) publishViewEvent(videoId, viewerId int64) {
	if mq.GlobalProducer == nil {
		hlog.Warn("mq producer not initialized, skip video view event")
		return
	}
	event := &mq.VideoViewEvent{
		VideoId:   videoId,
		UserId:    viewerId,
		Timestamp: time.Now().Unix(),
		EventId:   uuid.New().String(),
	}
	if err := mq.GlobalProducer.PublishVideoView(v.ctx, event); err != nil {
		hlog.Errorf("Failed to publish video view event: %v", err)
	}
}
