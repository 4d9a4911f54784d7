package tweet

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/tweet/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var param CreateTweetParam
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
	tweet, err := service.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, tweet)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var param UpdateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweetId, err := utils.ParseId(c.Param("tweetId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid tweet id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(tweetId, userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := utils.ParseId(c.Param("tweetId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid tweet id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(tweetId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func UserTweets(ctx context.Context, c *app.RequestContext) {
	var param UserTweetsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	targetUserId, err := utils.ParseId(c.Param("userId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid user id"), nil)
		return
	}
	viewerId := jwt.GetOptionalUserId(c)
	resp, err := service.NewTweetService(ctx).UserTweets(targetUserId, param.PageNum, param.PageSize, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
