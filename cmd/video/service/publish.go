package service

import (
	"context"
	"os"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type PublishVideoParam struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string // 暂存的本地视频文件
	ThumbnailPath string // 暂存的本地封面文件
}

type VideoPublishService struct {
	ctx context.Context
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx}
}

// PublishVideo 上传视频和封面到MinIO 探测时长 创建记录
// 中途失败时已上传的对象不做补偿回收 只记录日志
func (v *VideoPublishService) PublishVideo(req *PublishVideoParam) (*model.Video, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("title or description is required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("video file is required")
	}

	// 没传封面时从视频首帧截取
	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		thumbDir, err := os.MkdirTemp("", "thumbnail")
		if err != nil {
			return nil, errors.WithMessage(err, "os.MkdirTemp failed")
		}
		defer os.RemoveAll(thumbDir)
		generated, err := utils.GetVideoThumnail(req.VideoPath, thumbDir)
		if err != nil {
			return nil, errors.WithMessage(err, "utils.GetVideoThumnail failed")
		}
		thumbnailPath = generated
	}

	videoUrl, err := oss.UploadVideo(v.ctx, req.VideoPath)
	if err != nil {
		return nil, errors.WithMessage(err, "oss.UploadVideo failed")
	}

	duration, err := utils.GetVideoDuration(req.VideoPath)
	if err != nil {
		hlog.Warnf("Failed to probe video duration: %v", err)
	}

	coverUrl, err := oss.UploadImage(v.ctx, thumbnailPath)
	if err != nil {
		hlog.Errorf("Thumbnail upload failed, video object %s is orphaned: %v", videoUrl, err)
		return nil, errors.WithMessage(err, "oss.UploadImage failed")
	}

	video := &model.Video{
		VideoId:     utils.GenerateId(),
		UserId:      req.UserId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		VisitCount:  0,
		IsPublished: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.InsertVideo(v.ctx, video); err != nil {
		hlog.Errorf("InsertVideo failed, objects %s %s are orphaned: %v", videoUrl, coverUrl, err)
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}
	return video, nil
}
