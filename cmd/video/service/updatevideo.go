package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/guard"
	"PlayTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type UpdateVideoParam struct {
	UserId        int64
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string // 可选 暂存的新封面文件
}

type VideoUpdateService struct {
	ctx context.Context
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx}
}

func (v *VideoUpdateService) UpdateVideo(req *UpdateVideoParam) error {
	video, err := db.GetVideo(v.ctx, req.VideoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.RecordNotFoundErr
	}
	if err := guard.OwnedBy(video.UserId, req.UserId); err != nil {
		return err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.ThumbnailPath != "" {
		coverUrl, err := oss.UploadImage(v.ctx, req.ThumbnailPath)
		if err != nil {
			return errors.WithMessage(err, "oss.UploadImage failed")
		}
		if delErr := oss.DeleteByUrl(v.ctx, video.CoverUrl); delErr != nil {
			hlog.Warnf("Failed to delete old cover: %v", delErr)
		}
		updates["cover_url"] = coverUrl
	}
	if err := db.UpdateVideoInfo(v.ctx, req.VideoId, updates); err != nil {
		return errors.WithMessage(err, "dao.UpdateVideoInfo failed")
	}
	return nil
}

// TogglePublish 翻转发布状态 仅所有者可操作
func (v *VideoUpdateService) TogglePublish(videoId, userId int64) (bool, error) {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return false, errno.RecordNotFoundErr
	}
	if err := guard.OwnedBy(video.UserId, userId); err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := db.UpdateVideoInfo(v.ctx, videoId, map[string]interface{}{
		"is_published": next,
		"updated_at":   time.Now(),
	}); err != nil {
		return false, errors.WithMessage(err, "dao.UpdateVideoInfo failed")
	}
	return next, nil
}
