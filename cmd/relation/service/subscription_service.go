package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/cache"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/projector"
	"PlayTube.com/pkg/toggle"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// SubscriberInfo 订阅某频道的用户子档案
type SubscriberInfo struct {
	Subscriber   *projector.Owner `json:"subscriber"`
	SubscribedAt time.Time        `json:"subscribed_at"`
}

type SubscriberList struct {
	Subscribers []*SubscriberInfo `json:"subscribers"`
	Total       int64             `json:"total"`
	PageNum     int64             `json:"page_num"`
	PageSize    int64             `json:"page_size"`
}

// ChannelInfo 已订阅频道的投影 含该频道自身的订阅量
type ChannelInfo struct {
	Channel          *projector.Owner `json:"channel"`
	SubscribersCount int64            `json:"subscribers_count"`
	IsSubscribed     bool             `json:"is_subscribed"`
	SubscribedAt     time.Time        `json:"subscribed_at"`
}

type ChannelList struct {
	Channels []*ChannelInfo `json:"channels"`
	Total    int64          `json:"total"`
	PageNum  int64          `json:"page_num"`
	PageSize int64          `json:"page_size"`
}

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// ToggleSubscription 订阅或取消订阅频道 返回切换后是否处于已订阅态
// 自己订阅自己属于非法请求 先于状态判定拦截
func (service *SubscriptionService) ToggleSubscription(channelId, subscriberId int64) (bool, error) {
	if channelId == subscriberId {
		return false, errno.AuthorizationFailedErr.WithMessage("You cannot subscribe to your own channel")
	}
	channel, err := db.GetUser(service.ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetUser failed")
	}
	if channel == nil {
		return false, errno.RecordNotFoundErr.WithMessage("Channel not found")
	}

	existing, err := db.GetSubscription(service.ctx, channelId, subscriberId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetSubscription failed")
	}

	current := toggle.Absent
	if existing != nil {
		current = toggle.Present
	}
	op, next := toggle.Next(current)
	switch op {
	case toggle.Attach:
		subscription := &model.Subscription{
			SubscriptionId: utils.GenerateId(),
			UserId:         channelId,
			SubscriberId:   subscriberId,
			CreatedAt:      time.Now(),
		}
		if err := db.CreateSubscription(service.ctx, subscription); err != nil {
			return false, errors.WithMessage(err, "dao.CreateSubscription failed")
		}
	case toggle.Detach:
		if err := db.DeleteSubscription(service.ctx, existing.SubscriptionId); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteSubscription failed")
		}
	}
	cache.NewCounterCacheManager(cache.Client()).InvalidateChannelSubscriberCount(service.ctx, channelId)
	return bool(next), nil
}

// ChannelSubscribers 列出订阅某频道的用户
func (service *SubscriptionService) ChannelSubscribers(channelId, pageNum, pageSize int64) (*SubscriberList, error) {
	channel, err := db.GetUser(service.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if channel == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Channel not found")
	}

	page := projector.NormalizePage(pageNum, pageSize)
	subscriptions, count, err := db.QueryChannelSubscribers(service.ctx, channelId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryChannelSubscribers failed")
	}

	list := &SubscriberList{
		Subscribers: []*SubscriberInfo{},
		Total:       count,
		PageNum:     page.Num,
		PageSize:    page.Size,
	}
	if len(subscriptions) == 0 {
		return list, nil
	}

	subscriberIds := make([]int64, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		subscriberIds = append(subscriberIds, subscription.SubscriberId)
	}
	users, err := db.GetUsersByIds(service.ctx, subscriberIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	ownerIndex := projector.OwnerIndex(users)
	for _, subscription := range subscriptions {
		list.Subscribers = append(list.Subscribers, &SubscriberInfo{
			Subscriber:   ownerIndex[subscription.SubscriberId],
			SubscribedAt: subscription.CreatedAt,
		})
	}
	return list, nil
}

// SubscribedChannels 列出某用户订阅的频道 每个频道附带订阅量与观察者的订阅态
func (service *SubscriptionService) SubscribedChannels(subscriberId, pageNum, pageSize, viewerId int64) (*ChannelList, error) {
	user, err := db.GetUser(service.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}

	page := projector.NormalizePage(pageNum, pageSize)
	subscriptions, count, err := db.QuerySubscribedChannels(service.ctx, subscriberId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QuerySubscribedChannels failed")
	}

	list := &ChannelList{
		Channels: []*ChannelInfo{},
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}
	if len(subscriptions) == 0 {
		return list, nil
	}

	channelIds := make([]int64, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		channelIds = append(channelIds, subscription.UserId)
	}
	channels, err := db.GetUsersByIds(service.ctx, channelIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	channelSubscriptions, err := db.GetSubscriptionsByChannelIds(service.ctx, channelIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetSubscriptionsByChannelIds failed")
	}

	ownerIndex := projector.OwnerIndex(channels)
	relations := make([]projector.Relation, 0, len(channelSubscriptions))
	for _, subscription := range channelSubscriptions {
		relations = append(relations, projector.Relation{TargetId: subscription.UserId, ActorId: subscription.SubscriberId})
	}
	subscribeState := projector.DeriveRelationState(relations, viewerId)

	for _, subscription := range subscriptions {
		list.Channels = append(list.Channels, &ChannelInfo{
			Channel:          ownerIndex[subscription.UserId],
			SubscribersCount: subscribeState.Count(subscription.UserId),
			IsSubscribed:     subscribeState.ViewerHas(subscription.UserId),
			SubscribedAt:     subscription.CreatedAt,
		})
	}
	return list, nil
}
