package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

// stubHandler 记录收到的事件 可注入失败
type stubHandler struct {
	events []*VideoViewEvent
	err    error
}

func (s *stubHandler) HandleVideoViewEvent(ctx context.Context, event *VideoViewEvent) error {
	s.events = append(s.events, event)
	return s.err
}

func TestApplyVideoViewEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("正常消息交给处理器", func(t *testing.T) {
		handler := &stubHandler{}
		body, _ := json.Marshal(&VideoViewEvent{
			VideoId:   100,
			UserId:    7,
			Timestamp: 1756339200,
			EventId:   "evt-1",
		})
		if err := applyVideoViewEvent(ctx, handler, body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(handler.events) != 1 {
			t.Fatalf("handler called %d times, want 1", len(handler.events))
		}
		got := handler.events[0]
		if got.VideoId != 100 || got.UserId != 7 || got.EventId != "evt-1" {
			t.Errorf("unexpected event: %+v", got)
		}
	})

	t.Run("匿名观看事件UserId为0", func(t *testing.T) {
		handler := &stubHandler{}
		body, _ := json.Marshal(&VideoViewEvent{VideoId: 100, UserId: 0, EventId: "evt-2"})
		if err := applyVideoViewEvent(ctx, handler, body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handler.events[0].UserId != 0 {
			t.Errorf("UserId = %d, want 0", handler.events[0].UserId)
		}
	})

	t.Run("畸形消息不调用处理器", func(t *testing.T) {
		handler := &stubHandler{}
		if err := applyVideoViewEvent(ctx, handler, []byte("not-json")); err == nil {
			t.Fatal("expected decode error")
		}
		if len(handler.events) != 0 {
			t.Errorf("handler must not be called for malformed body")
		}
	})

	t.Run("处理器失败向上传播", func(t *testing.T) {
		handler := &stubHandler{err: errors.New("db down")}
		body, _ := json.Marshal(&VideoViewEvent{VideoId: 100, EventId: "evt-3"})
		if err := applyVideoViewEvent(ctx, handler, body); err == nil {
			t.Fatal("expected handler error to propagate")
		}
	})
}

// 线上两端独立编解码 字段名是协议的一部分
func TestVideoViewEventWireFormat(t *testing.T) {
	body, err := json.Marshal(&VideoViewEvent{VideoId: 1, UserId: 2, Timestamp: 3, EventId: "e"})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"video_id", "user_id", "timestamp", "event_id"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing wire field %q", key)
		}
	}
}
