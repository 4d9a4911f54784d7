package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	RecordNotFoundErrCode      = 10003
	AuthorizationFailedErrCode = 10004
	TokenInvailedErrCode       = 10005
	RequestErrCode             = 10006
	RecordAlreadyExistErrCode  = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "Record not found")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	TokenInvailedErr       = NewErrNo(TokenInvailedErrCode, "Token is invalid")
	RequestErr             = NewErrNo(RequestErrCode, "Request is not allowed")
	RecordAlreadyExistErr  = NewErrNo(RecordAlreadyExistErrCode, "Record already exists")
)

// ConvertErr convert error to ErrNo
// 其他的error会被转换为ServiceErr
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
