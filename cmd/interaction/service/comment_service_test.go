package service

import (
	"context"
	"strings"
	"testing"

	"PlayTube.com/pkg/errno"
	"github.com/pkg/errors"
)

func TestValidateCommentContent(t *testing.T) {
	service := NewCommentService(context.Background())

	t.Run("正常内容通过", func(t *testing.T) {
		if err := service.validateCommentContent("nice video"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("空内容拒绝", func(t *testing.T) {
		assertParamErr(t, service.validateCommentContent(""))
	})

	t.Run("纯空白拒绝", func(t *testing.T) {
		assertParamErr(t, service.validateCommentContent("   \t\n"))
	})

	t.Run("超长内容拒绝", func(t *testing.T) {
		assertParamErr(t, service.validateCommentContent(strings.Repeat("a", MaxCommentLength+1)))
	})

	t.Run("长度按rune计算", func(t *testing.T) {
		// 500个多字节字符 字节数超限但rune数正好在限内
		if err := service.validateCommentContent(strings.Repeat("好", MaxCommentLength)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func assertParamErr(t *testing.T, err error) {
	t.Helper()
	var e errno.ErrNo
	if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
		t.Errorf("expected ParamErr, got %v", err)
	}
}
