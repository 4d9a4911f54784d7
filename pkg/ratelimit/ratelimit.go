// Package ratelimit 基于redis有序集合的滑动窗口限流
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	rdb         *redis.Client
	windowSize  time.Duration
	maxRequests int64
}

func NewLimiter(rdb *redis.Client, windowSize time.Duration, maxRequests int64) *Limiter {
	return &Limiter{rdb: rdb, windowSize: windowSize, maxRequests: maxRequests}
}

// Allow 滑动窗口判定 redis不可用时放行
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l.rdb == nil {
		return true
	}
	now := time.Now()
	windowStart := now.Add(-l.windowSize)
	redisKey := fmt.Sprintf("rate_limit:%s", key)

	pipe := l.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprint(windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	pipe.Expire(ctx, redisKey, l.windowSize)
	if _, err := pipe.Exec(ctx); err != nil {
		hlog.Warnf("rate limiter redis error: %v", err)
		return true
	}
	return countCmd.Val() < l.maxRequests
}

// Middleware 按客户端IP限流
func (l *Limiter) Middleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !l.Allow(ctx, c.ClientIP()) {
			c.JSON(consts.StatusTooManyRequests, map[string]interface{}{
				"code":    errno.RequestErrCode,
				"message": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
