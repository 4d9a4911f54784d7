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

func AddComment(ctx context.Context, c *app.RequestContext) {
	var param AddCommentParam
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
	comment, err := service.NewCommentService(ctx).AddComment(videoId, userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	commentId, err := utils.ParseId(c.Param("commentId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid comment id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(commentId, userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ParseId(c.Param("commentId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid comment id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(commentId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func CommentList(ctx context.Context, c *app.RequestContext) {
	var param CommentListParam
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
	viewerId := jwt.GetOptionalUserId(c)
	resp, err := service.NewCommentService(ctx).CommentList(videoId, param.PageNum, param.PageSize, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
