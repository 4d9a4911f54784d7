package playlist

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/playlist/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
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
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func PlaylistDetail(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ParseId(c.Param("playlistId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid playlist id"), nil)
		return
	}
	viewerId := jwt.GetOptionalUserId(c)
	resp, err := service.NewPlaylistService(ctx).PlaylistDetail(playlistId, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, err := utils.ParseId(c.Param("playlistId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid playlist id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(playlistId, userId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ParseId(c.Param("playlistId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid playlist id"), nil)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(playlistId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	mutatePlaylistVideo(ctx, c, service.NewPlaylistService(ctx).AddVideo)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	mutatePlaylistVideo(ctx, c, service.NewPlaylistService(ctx).RemoveVideo)
}

func mutatePlaylistVideo(ctx context.Context, c *app.RequestContext,
	mutateFn func(playlistId, videoId, userId int64) error) {
	playlistId, err := utils.ParseId(c.Param("playlistId"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Invalid playlist id"), nil)
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
	if err := mutateFn(playlistId, videoId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	var param UserPlaylistsParam
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
	resp, err := service.NewPlaylistService(ctx).UserPlaylists(targetUserId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, resp)
}
