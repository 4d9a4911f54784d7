package projector

import "testing"

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name       string
		num, size  int64
		wantOffset int64
		wantLimit  int64
	}{
		{"正常分页", 3, 20, 40, 20},
		{"零值取默认", 0, 0, 0, 10},
		{"负值取默认", -1, -5, 0, 10},
		{"第一页offset为0", 1, 10, 0, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page := NormalizePage(c.num, c.size)
			if page.Offset() != c.wantOffset {
				t.Errorf("Offset() = %d, want %d", page.Offset(), c.wantOffset)
			}
			if page.Limit() != c.wantLimit {
				t.Errorf("Limit() = %d, want %d", page.Limit(), c.wantLimit)
			}
		})
	}
}

func TestNormalizeSort(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"views":      "visit_count",
	}

	t.Run("白名单键映射为列名", func(t *testing.T) {
		if got := NormalizeSort("views", "asc", allowed); got != "visit_count ASC" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("非asc方向一律降序", func(t *testing.T) {
		if got := NormalizeSort("created_at", "whatever", allowed); got != "created_at DESC" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("白名单外的键回退默认排序", func(t *testing.T) {
		if got := NormalizeSort("visit_count; DROP TABLE videos", "asc", allowed); got != "created_at DESC" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("空键回退默认排序", func(t *testing.T) {
		if got := NormalizeSort("", "", allowed); got != "created_at DESC" {
			t.Errorf("got %q", got)
		}
	})
}
