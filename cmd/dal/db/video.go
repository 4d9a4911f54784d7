package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// QueryVideos 查询已发布的视频 标题模糊过滤 先过滤排序再分页
func QueryVideos(ctx context.Context, keyword, order string, limit, offset int64) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0)
	var count int64
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if keyword != "" {
		query = query.Where("title like ?", "%"+keyword+"%")
	}
	if err := query.Count(&count).Order(order).
		Limit(int(limit)).Offset(int(offset)).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos failed,err:%v", err)
	}
	return videos, count, nil
}

// GetVideo 不存在时返回(nil, nil)
func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetVideo failed,err:%v", err)
	}
	return &video, nil
}

// GetVideosByIds 对于视频列表的查询 只返回已发布的
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id IN (?) And is_published = ?", videoIds, true).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByIds failed,err:%v", err)
	}
	return videos, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

func UpdateVideoInfo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoInfo failed,err:%v", err)
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed,err:%v", err)
	}
	return nil
}

// IncrVideoVisit 播放数+1 由视图事件消费者调用
func IncrVideoVisit(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error; err != nil {
		return errors.Wrapf(err, "IncrVideoVisit failed,err:%v", err)
	}
	return nil
}

func CountUserVideos(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? And is_published = ?", userId, true).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountUserVideos failed,err:%v", err)
	}
	return count, nil
}
