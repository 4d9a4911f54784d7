package video

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseId(c.Param("videoId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid video id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewVideoDeleteService(ctx).DeleteVideo(videoId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}
