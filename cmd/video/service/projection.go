package service

import (
	"context"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/projector"
	"github.com/pkg/errors"
)

// ProjectVideos lookup+derive+project阶段: 所有者子档案/点赞计数/viewer谓词
// 传入的videos已经过match/sort/paginate viewerId为0表示匿名
func ProjectVideos(ctx context.Context, videos []*model.Video, viewerId int64) ([]*VideoInfo, error) {
	if len(videos) == 0 {
		return []*VideoInfo{}, nil
	}

	videoIds := make([]int64, 0, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoIds = append(videoIds, video.VideoId)
		ownerIds = append(ownerIds, video.UserId)
	}

	// lookup
	owners, err := db.GetUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	likes, err := db.GetLikesByVideoIds(ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikesByVideoIds failed")
	}

	// derive
	ownerIndex := projector.OwnerIndex(owners)
	relations := make([]projector.Relation, 0, len(likes))
	for _, like := range likes {
		relations = append(relations, projector.Relation{TargetId: like.VideoId, ActorId: like.UserId})
	}
	likeState := projector.DeriveRelationState(relations, viewerId)

	// project
	infos := make([]*VideoInfo, 0, len(videos))
	for _, video := range videos {
		infos = append(infos, &VideoInfo{
			VideoId:     video.VideoId,
			Title:       video.Title,
			Description: video.Description,
			VideoUrl:    video.VideoUrl,
			CoverUrl:    video.CoverUrl,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			IsPublished: video.IsPublished,
			Owner:       ownerIndex[video.UserId],
			LikesCount:  likeState.Count(video.VideoId),
			IsLiked:     likeState.ViewerHas(video.VideoId),
			CreatedAt:   video.CreatedAt,
		})
	}
	return infos, nil
}
