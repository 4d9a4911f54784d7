package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterCacheManager 热门计数缓存 数据库仍是权威数据源
// 缓存未命中或redis不可用时直接回源 绝不让缓存错误影响请求
type CounterCacheManager struct {
	client        *redis.Client
	counterExpire time.Duration
}

func NewCounterCacheManager(client *redis.Client) *CounterCacheManager {
	return &CounterCacheManager{
		client:        client,
		counterExpire: 1 * time.Hour,
	}
}

// 缓存键名常量
const (
	// 视频点赞数缓存键
	VideoLikeCountKey = "video:like_count:%d"
	// 频道订阅数缓存键
	ChannelSubscriberCountKey = "channel:subscriber_count:%d"
)

func (ccm *CounterCacheManager) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, bool) {
	return ccm.get(ctx, fmt.Sprintf(VideoLikeCountKey, videoId))
}

func (ccm *CounterCacheManager) SetVideoLikeCount(ctx context.Context, videoId, count int64) {
	ccm.set(ctx, fmt.Sprintf(VideoLikeCountKey, videoId), count)
}

func (ccm *CounterCacheManager) InvalidateVideoLikeCount(ctx context.Context, videoId int64) {
	ccm.del(ctx, fmt.Sprintf(VideoLikeCountKey, videoId))
}

func (ccm *CounterCacheManager) GetChannelSubscriberCount(ctx context.Context, channelId int64) (int64, bool) {
	return ccm.get(ctx, fmt.Sprintf(ChannelSubscriberCountKey, channelId))
}

func (ccm *CounterCacheManager) SetChannelSubscriberCount(ctx context.Context, channelId, count int64) {
	ccm.set(ctx, fmt.Sprintf(ChannelSubscriberCountKey, channelId), count)
}

func (ccm *CounterCacheManager) InvalidateChannelSubscriberCount(ctx context.Context, channelId int64) {
	ccm.del(ctx, fmt.Sprintf(ChannelSubscriberCountKey, channelId))
}

func (ccm *CounterCacheManager) get(ctx context.Context, key string) (int64, bool) {
	if ccm.client == nil {
		return 0, false
	}
	val, err := ccm.client.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (ccm *CounterCacheManager) set(ctx context.Context, key string, count int64) {
	if ccm.client == nil {
		return
	}
	ccm.client.Set(ctx, key, count, ccm.counterExpire)
}

func (ccm *CounterCacheManager) del(ctx context.Context, key string) {
	if ccm.client == nil {
		return
	}
	ccm.client.Del(ctx, key)
}
