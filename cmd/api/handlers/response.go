package handlers

import (
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(statusOf(Err), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

func statusOf(err errno.ErrNo) int {
	switch err.ErrCode {
	case errno.SuccessCode:
		return consts.StatusOK
	case errno.ParamErrCode, errno.RequestErrCode:
		return consts.StatusBadRequest
	case errno.RecordNotFoundErrCode:
		return consts.StatusNotFound
	case errno.TokenInvailedErrCode:
		return consts.StatusUnauthorized
	case errno.AuthorizationFailedErrCode:
		return consts.StatusForbidden
	case errno.RecordAlreadyExistErrCode:
		return consts.StatusConflict
	default:
		return consts.StatusInternalServerError
	}
}
