package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// ViewEventProcessor 视图事件消费者 播放数+1并维护观看历史
// 重复观看不会产生重复的历史记录(集合语义)
type ViewEventProcessor struct{}

func NewViewEventProcessor() *ViewEventProcessor {
	return &ViewEventProcessor{}
}

func (p *ViewEventProcessor) HandleVideoViewEvent(ctx context.Context, event *mq.VideoViewEvent) error {
	if err := db.IncrVideoVisit(ctx, event.VideoId); err != nil {
		return errors.WithMessage(err, "dao.IncrVideoVisit failed")
	}
	if event.UserId > 0 {
		if err := db.UpsertWatchHistory(ctx, event.UserId, event.VideoId, time.Unix(event.Timestamp, 0)); err != nil {
			// 历史写入失败不影响播放数 也不重新入队
			hlog.Errorf("Failed to upsert watch history: %v", err)
		}
	}
	return nil
}
