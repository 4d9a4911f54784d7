package interaction

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/interaction/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, "videoId", service.NewLikeService(ctx).ToggleVideoLike)
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, "commentId", service.NewLikeService(ctx).ToggleCommentLike)
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, "tweetId", service.NewLikeService(ctx).ToggleTweetLike)
}

func toggleLike(ctx context.Context, c *app.RequestContext, paramName string,
	toggleFn func(targetId, userId int64) (bool, error)) {
	targetId, err := utils.ParseId(c.Param(paramName))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	liked, err := toggleFn(targetId, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"is_liked": liked})
}

// LikedVideos 当前用户点赞过的视频
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var param LikedVideoParam
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
	resp, err := service.NewLikedVideoService(ctx).LikedVideos(userId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
