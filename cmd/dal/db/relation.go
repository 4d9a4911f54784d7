package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetSubscription toggle的状态检查 不存在时返回(nil, nil)
func GetSubscription(ctx context.Context, channelId, subscriberId int64) (*model.Subscription, error) {
	var subscription model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("user_id = ? And subscriber_id = ?", channelId, subscriberId).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetSubscription failed,err:%v", err)
	}
	return &subscription, nil
}

func CreateSubscription(ctx context.Context, subscription *model.Subscription) error {
	if err := DB.WithContext(ctx).Create(subscription).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed,err:%v", err)
	}
	return nil
}

func DeleteSubscription(ctx context.Context, subscriptionId int64) error {
	if err := DB.WithContext(ctx).Where("subscription_id = ?", subscriptionId).
		Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteSubscription failed,err:%v", err)
	}
	return nil
}

// QueryChannelSubscribers 频道的订阅者列表
func QueryChannelSubscribers(ctx context.Context, channelId, limit, offset int64) ([]*model.Subscription, int64, error) {
	subscriptions := make([]*model.Subscription, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", channelId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&subscriptions).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryChannelSubscribers failed,err:%v", err)
	}
	return subscriptions, count, nil
}

// QuerySubscribedChannels 用户订阅的频道列表
func QuerySubscribedChannels(ctx context.Context, subscriberId, limit, offset int64) ([]*model.Subscription, int64, error) {
	subscriptions := make([]*model.Subscription, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&subscriptions).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QuerySubscribedChannels failed,err:%v", err)
	}
	return subscriptions, count, nil
}

// GetSubscriptionsByChannelIds lookup阶段的批量查询
func GetSubscriptionsByChannelIds(ctx context.Context, channelIds []int64) ([]*model.Subscription, error) {
	subscriptions := make([]*model.Subscription, 0)
	if len(channelIds) == 0 {
		return subscriptions, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("user_id IN (?)", channelIds).Find(&subscriptions).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriptionsByChannelIds failed,err:%v", err)
	}
	return subscriptions, nil
}

func CountChannelSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountChannelSubscribers failed,err:%v", err)
	}
	return count, nil
}

func CountSubscribedChannels(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribedChannels failed,err:%v", err)
	}
	return count, nil
}
