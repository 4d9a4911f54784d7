package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("ErrNo原样返回", func(t *testing.T) {
		got := ConvertErr(RecordNotFoundErr)
		if got.ErrCode != RecordNotFoundErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, RecordNotFoundErrCode)
		}
	})

	t.Run("包装过的ErrNo也能解出", func(t *testing.T) {
		wrapped := errors.WithMessage(AuthorizationFailedErr, "dao.GetVideo failed")
		got := ConvertErr(wrapped)
		if got.ErrCode != AuthorizationFailedErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, AuthorizationFailedErrCode)
		}
	})

	t.Run("普通error转为ServiceErr", func(t *testing.T) {
		got := ConvertErr(errors.New("boom"))
		if got.ErrCode != ServiceErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, ServiceErrCode)
		}
		if got.ErrMsg != "boom" {
			t.Errorf("ErrMsg = %q, want boom", got.ErrMsg)
		}
	})

	t.Run("WithMessage不改动原值", func(t *testing.T) {
		custom := ParamErr.WithMessage("Video file is required")
		if custom.ErrMsg != "Video file is required" {
			t.Errorf("ErrMsg = %q", custom.ErrMsg)
		}
		if ParamErr.ErrMsg != "Wrong Parameter has been given" {
			t.Errorf("ParamErr mutated: %q", ParamErr.ErrMsg)
		}
	})
}
