package service

import (
	"context"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	videoservice "PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/projector"
	"github.com/pkg/errors"
)

type LikedVideoService struct {
	ctx context.Context
}

func NewLikedVideoService(ctx context.Context) *LikedVideoService {
	return &LikedVideoService{ctx: ctx}
}

// LikedVideos 用户点赞过的已发布视频 点赞时间倒序
// 已下架或删除的视频在投影阶段被过滤掉 不计入返回
func (service *LikedVideoService) LikedVideos(userId, pageNum, pageSize int64) (*videoservice.VideoList, error) {
	page := projector.NormalizePage(pageNum, pageSize)

	videoIds, count, err := db.QueryLikedVideoIds(service.ctx, userId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryLikedVideoIds failed")
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}
	// IN查询不保序 按点赞顺序回排
	ordered := orderByIds(videos, videoIds)

	infos, err := videoservice.ProjectVideos(service.ctx, ordered, userId)
	if err != nil {
		return nil, err
	}
	return &videoservice.VideoList{
		Videos:   infos,
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}, nil
}

func orderByIds(videos []*model.Video, videoIds []int64) []*model.Video {
	videoIndex := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoIndex[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videos))
	for _, id := range videoIds {
		if video, ok := videoIndex[id]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered
}
