package mq

// VideoViewEvent 视频观看事件
// 单视频详情接口只负责发布事件 播放数+1和观看历史写入由消费者异步完成
type VideoViewEvent struct {
	VideoId   int64  `json:"video_id"`  // 视频ID
	UserId    int64  `json:"user_id"`   // 观看者ID 匿名时为0
	Timestamp int64  `json:"timestamp"` // 时间戳
	EventId   string `json:"event_id"`  // 事件ID
}

const (
	VideoViewExchange = "video_view_events"
	VideoViewQueue    = "video_view_event_queue"
)
