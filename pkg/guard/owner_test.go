package guard

import (
	"testing"

	"PlayTube.com/pkg/errno"
	"github.com/pkg/errors"
)

func TestOwnedBy(t *testing.T) {
	t.Run("所有者放行", func(t *testing.T) {
		if err := OwnedBy(7, 7); err != nil {
			t.Errorf("owner should pass, got %v", err)
		}
	})

	t.Run("非所有者拒绝", func(t *testing.T) {
		err := OwnedBy(7, 8)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.AuthorizationFailedErrCode {
			t.Errorf("expected AuthorizationFailedErr, got %v", err)
		}
	})

	t.Run("未认证调用者拒绝", func(t *testing.T) {
		err := OwnedBy(7, 0)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.TokenInvailedErrCode {
			t.Errorf("expected TokenInvailedErr, got %v", err)
		}
	})
}
