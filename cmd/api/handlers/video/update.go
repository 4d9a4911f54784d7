package video

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UpdateVideo 更新标题与简介 可选换封面
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
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

	// 封面可选 没传时保持原封面
	thumbnailPath := ""
	if _, ferr := c.FormFile("thumbnail"); ferr == nil {
		path, cleanup, serr := stageUpload(c, "thumbnail")
		if serr != nil {
			common.SendResponse(c, errno.ConvertErr(serr), nil)
			return
		}
		defer cleanup()
		thumbnailPath = path
	}

	if err := service.NewVideoUpdateService(ctx).UpdateVideo(&service.UpdateVideoParam{
		UserId:        userId,
		VideoId:       videoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	}); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
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
	published, err := service.NewVideoUpdateService(ctx).TogglePublish(videoId, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"is_published": published})
}
