package service

import (
	"context"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/pkg/projector"
	"github.com/pkg/errors"
)

// 列表接口允许的排序键白名单
var videoSortColumns = map[string]string{
	"created_at":  "created_at",
	"views":       "visit_count",
	"visit_count": "visit_count",
	"duration":    "duration",
	"title":       "title",
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// VideoList match(已发布+标题过滤) -> sort -> paginate在SQL完成 其余阶段在ProjectVideos
func (v *VideoListService) VideoList(keyword, sortBy, sortOrder string, pageNum, pageSize, viewerId int64) (*VideoList, error) {
	page := projector.NormalizePage(pageNum, pageSize)
	order := projector.NormalizeSort(sortBy, sortOrder, videoSortColumns)

	videos, count, err := db.QueryVideos(v.ctx, keyword, order, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryVideos failed")
	}

	infos, err := ProjectVideos(v.ctx, videos, viewerId)
	if err != nil {
		return nil, err
	}
	return &VideoList{
		Videos:   infos,
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}, nil
}
