package toggle

import "testing"

func TestNext(t *testing.T) {
	t.Run("不存在时创建", func(t *testing.T) {
		op, next := Next(Absent)
		if op != Attach || next != Present {
			t.Errorf("Next(Absent) = (%v, %v), want (Attach, Present)", op, next)
		}
	})

	t.Run("存在时删除", func(t *testing.T) {
		op, next := Next(Present)
		if op != Detach || next != Absent {
			t.Errorf("Next(Present) = (%v, %v), want (Detach, Absent)", op, next)
		}
	})

	t.Run("连续两次toggle回到原状态", func(t *testing.T) {
		_, after := Next(Absent)
		_, restored := Next(after)
		if restored != Absent {
			t.Errorf("double toggle should restore Absent, got %v", restored)
		}
	})
}
