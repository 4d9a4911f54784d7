package service

import (
	"context"
	"testing"

	"PlayTube.com/pkg/errno"
	"github.com/pkg/errors"
)

// 自己订阅自己必须在触达任何存储之前被拒绝
// 本测试不初始化数据库 走到DB就会panic 借此验证拦截发生在最前面
func TestToggleSubscriptionSelfAction(t *testing.T) {
	service := NewSubscriptionService(context.Background())

	_, err := service.ToggleSubscription(42, 42)
	var e errno.ErrNo
	if !errors.As(err, &e) || e.ErrCode != errno.AuthorizationFailedErrCode {
		t.Errorf("expected AuthorizationFailedErr, got %v", err)
	}
}
