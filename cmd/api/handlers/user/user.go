package user

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewUserService(ctx).CurrentUser(userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}

// ChannelProfile 频道主页 订阅量等统计随档案一并返回
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	userName := c.Param("userName")
	viewerId := jwt.GetOptionalUserId(c)
	resp, err := service.NewUserService(ctx).ChannelProfileByName(userName, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	var param WatchHistoryParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewUserService(ctx).WatchHistory(userId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
