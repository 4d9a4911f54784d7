package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetUser 不存在时返回(nil, nil) 永远不会选出凭证列
func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Select("user_id", "user_name", "full_name", "avatar_url", "cover_url", "created_at", "updated_at").
		Where("user_id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Select("user_id", "user_name", "full_name", "avatar_url", "cover_url", "created_at", "updated_at").
		Where("user_name = ?", userName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUserByName failed,err:%v", err)
	}
	return &user, nil
}

// GetUsersByIds 批量查询所有者的公开字段 用于lookup阶段
func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Select("user_id", "user_name", "full_name", "avatar_url").
		Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed,err:%v", err)
	}
	return users, nil
}

// UpsertWatchHistory 观看历史的集合语义 已存在时只刷新WatchTime
func UpsertWatchHistory(ctx context.Context, userId, videoId int64, watchTime time.Time) error {
	var history model.WatchHistory
	err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ? And video_id = ?", userId, videoId).First(&history).Error
	if err == nil {
		return DB.WithContext(ctx).Model(&model.WatchHistory{}).
			Where("watch_history_id = ?", history.WatchHistoryId).
			Update("watch_time", watchTime).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(err, "UpsertWatchHistory failed,err:%v", err)
	}
	return DB.WithContext(ctx).Create(&model.WatchHistory{
		UserId:    userId,
		VideoId:   videoId,
		WatchTime: watchTime,
	}).Error
}

// QueryWatchHistory 按观看时间倒序
func QueryWatchHistory(ctx context.Context, userId, limit, offset int64) ([]*model.WatchHistory, int64, error) {
	histories := make([]*model.WatchHistory, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).Where("user_id = ?", userId).
		Count(&count).Order("watch_time DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&histories).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryWatchHistory failed,err:%v", err)
	}
	return histories, count, nil
}
