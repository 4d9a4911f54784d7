package video

import (
	"context"
	"os"
	"path/filepath"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// PublishVideo 发布视频 multipart上传 先落到临时目录再推对象存储
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
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

	videoPath, cleanupVideo, err := stageUpload(c, "video_file")
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("Video file is required"), nil)
		return
	}
	defer cleanupVideo()

	// 封面可选 缺省时由服务端从视频截帧
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

	video, err := service.NewVideoPublishService(ctx).PublishVideo(&service.PublishVideoParam{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

// stageUpload 把上传文件落到临时文件 返回路径和清理函数
func stageUpload(c *app.RequestContext, field string) (string, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil {
			hlog.Warnf("remove staged upload %s failed: %v", path, err)
		}
	}
	return path, cleanup, nil
}
