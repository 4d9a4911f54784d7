package projector

import (
	"testing"

	"PlayTube.com/cmd/model"
)

func TestProjectOwner(t *testing.T) {
	t.Run("完整行裁剪成子档案", func(t *testing.T) {
		user := &model.User{
			UserId:    100,
			UserName:  "alice",
			FullName:  "Alice Smith",
			AvatarUrl: "http://minio/avatar/alice.png",
			CoverUrl:  "http://minio/cover/alice.png",
		}
		owner := ProjectOwner(user)
		if owner.UserId != 100 || owner.UserName != "alice" || owner.FullName != "Alice Smith" {
			t.Errorf("unexpected owner: %+v", owner)
		}
		if owner.AvatarUrl != "http://minio/avatar/alice.png" {
			t.Errorf("unexpected avatar: %s", owner.AvatarUrl)
		}
	})

	t.Run("nil输入返回nil", func(t *testing.T) {
		if owner := ProjectOwner(nil); owner != nil {
			t.Errorf("expected nil, got %+v", owner)
		}
	})
}

func TestOwnerIndex(t *testing.T) {
	users := []*model.User{
		{UserId: 1, UserName: "a"},
		nil,
		{UserId: 2, UserName: "b"},
	}
	index := OwnerIndex(users)
	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if index[1].UserName != "a" || index[2].UserName != "b" {
		t.Errorf("unexpected index: %+v", index)
	}
	if _, ok := index[3]; ok {
		t.Error("unknown id should be absent")
	}
}

func TestDeriveRelationState(t *testing.T) {
	rows := []Relation{
		{TargetId: 10, ActorId: 1},
		{TargetId: 10, ActorId: 2},
		{TargetId: 20, ActorId: 2},
	}

	t.Run("登录viewer的计数与谓词", func(t *testing.T) {
		state := DeriveRelationState(rows, 2)
		if got := state.Count(10); got != 2 {
			t.Errorf("Count(10) = %d, want 2", got)
		}
		if got := state.Count(20); got != 1 {
			t.Errorf("Count(20) = %d, want 1", got)
		}
		if !state.ViewerHas(10) || !state.ViewerHas(20) {
			t.Error("viewer 2 should have relation on 10 and 20")
		}
	})

	t.Run("viewer没有关系行时谓词为false", func(t *testing.T) {
		state := DeriveRelationState(rows, 3)
		if state.ViewerHas(10) || state.ViewerHas(20) {
			t.Error("viewer 3 has no relation rows")
		}
	})

	t.Run("匿名viewer谓词恒为false", func(t *testing.T) {
		state := DeriveRelationState(rows, 0)
		if state.ViewerHas(10) {
			t.Error("anonymous viewer predicate must be false")
		}
		if got := state.Count(10); got != 2 {
			t.Errorf("counts must not depend on viewer, got %d", got)
		}
	})

	t.Run("未知目标计数为0", func(t *testing.T) {
		state := DeriveRelationState(rows, 1)
		if got := state.Count(999); got != 0 {
			t.Errorf("Count(999) = %d, want 0", got)
		}
	})

	t.Run("空关系集不出错", func(t *testing.T) {
		state := DeriveRelationState(nil, 1)
		if state.Count(10) != 0 || state.ViewerHas(10) {
			t.Error("empty rows should yield zero state")
		}
	})
}
