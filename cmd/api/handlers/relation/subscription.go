package relation

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/relation/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ParseId(c.Param("channelId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid channel id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribed, err := service.NewSubscriptionService(ctx).ToggleSubscription(channelId, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"is_subscribed": subscribed})
}

func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	var param SubscriberListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId, err := utils.ParseId(c.Param("channelId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid channel id"), nil)
		return
	}
	resp, err := service.NewSubscriptionService(ctx).ChannelSubscribers(channelId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var param ChannelListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscriberId, err := utils.ParseId(c.Param("subscriberId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid subscriber id"), nil)
		return
	}
	viewerId := jwt.GetOptionalUserId(c)
	resp, err := service.NewSubscriptionService(ctx).SubscribedChannels(subscriberId, param.PageNum, param.PageSize, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
