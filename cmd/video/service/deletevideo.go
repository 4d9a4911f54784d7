package service

import (
	"context"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/guard"
	"PlayTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

// DeleteVideo 硬删除 仅所有者可操作 MinIO对象删除失败只记录日志
func (v *VideoDeleteService) DeleteVideo(videoId, userId int64) error {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.RecordNotFoundErr
	}
	if err := guard.OwnedBy(video.UserId, userId); err != nil {
		return err
	}
	if err := db.DeleteVideo(v.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.DeleteVideo failed")
	}
	if err := oss.DeleteByUrl(v.ctx, video.VideoUrl); err != nil {
		hlog.Warnf("Failed to delete video object: %v", err)
	}
	if err := oss.DeleteByUrl(v.ctx, video.CoverUrl); err != nil {
		hlog.Warnf("Failed to delete cover object: %v", err)
	}
	return nil
}
