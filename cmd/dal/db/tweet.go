package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "CreateTweet failed,err:%v", err)
	}
	return nil
}

// GetTweet 不存在时返回(nil, nil)
func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetTweet failed,err:%v", err)
	}
	return &tweet, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweetContent failed,err:%v", err)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTweet failed,err:%v", err)
	}
	return nil
}

// QueryUserTweets 获取用户发布的动态 创建时间倒序
func QueryUserTweets(ctx context.Context, userId, limit, offset int64) ([]*model.Tweet, int64, error) {
	tweets := make([]*model.Tweet, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&tweets).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryUserTweets failed,err:%v", err)
	}
	return tweets, count, nil
}
