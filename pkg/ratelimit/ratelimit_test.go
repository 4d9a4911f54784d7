package ratelimit

import (
	"context"
	"testing"
	"time"
)

// redis不可用时限流器必须放行 不能把基础设施故障放大成拒绝服务
func TestAllowWithoutRedis(t *testing.T) {
	limiter := NewLimiter(nil, time.Minute, 10)
	if !limiter.Allow(context.Background(), "1.2.3.4") {
		t.Error("nil redis client should always allow")
	}
}
