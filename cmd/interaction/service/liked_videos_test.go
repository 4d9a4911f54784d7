package service

import (
	"testing"

	"PlayTube.com/cmd/model"
)

func TestOrderByIds(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 3},
		{VideoId: 1},
		{VideoId: 2},
	}

	t.Run("按点赞顺序回排", func(t *testing.T) {
		ordered := orderByIds(videos, []int64{2, 3, 1})
		if len(ordered) != 3 {
			t.Fatalf("len = %d, want 3", len(ordered))
		}
		for i, want := range []int64{2, 3, 1} {
			if ordered[i].VideoId != want {
				t.Errorf("ordered[%d] = %d, want %d", i, ordered[i].VideoId, want)
			}
		}
	})

	t.Run("已删除或未发布的视频被过滤", func(t *testing.T) {
		ordered := orderByIds(videos, []int64{9, 1, 2})
		if len(ordered) != 2 {
			t.Fatalf("len = %d, want 2", len(ordered))
		}
		if ordered[0].VideoId != 1 || ordered[1].VideoId != 2 {
			t.Errorf("unexpected order: %d, %d", ordered[0].VideoId, ordered[1].VideoId)
		}
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		if got := orderByIds(nil, nil); len(got) != 0 {
			t.Errorf("expected empty, got %d", len(got))
		}
	})
}
