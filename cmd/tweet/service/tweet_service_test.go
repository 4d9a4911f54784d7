package service

import (
	"context"
	"strings"
	"testing"

	"PlayTube.com/pkg/errno"
	"github.com/pkg/errors"
)

func TestValidateContent(t *testing.T) {
	service := NewTweetService(context.Background())

	t.Run("正常内容通过", func(t *testing.T) {
		if err := service.validateContent("hello world"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("空白内容拒绝", func(t *testing.T) {
		err := service.validateContent("  ")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Errorf("expected ParamErr, got %v", err)
		}
	})

	t.Run("280字符以内通过", func(t *testing.T) {
		if err := service.validateContent(strings.Repeat("x", MaxTweetLength)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("超过280字符拒绝", func(t *testing.T) {
		err := service.validateContent(strings.Repeat("x", MaxTweetLength+1))
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Errorf("expected ParamErr, got %v", err)
		}
	})
}
