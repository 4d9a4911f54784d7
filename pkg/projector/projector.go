// Package projector 把基础实体加工成响应视图
//
// 所有列表/详情接口共用同一套阶段顺序:
//
//	match -> lookup -> derive -> project -> sort -> paginate
//
// match/sort/paginate由dal层在SQL中完成(先过滤排序 再limit/offset)
// lookup(所有者子档案/点赞/订阅行)和derive(计数/viewer谓词)在内存中完成
// 各阶段单独可测 阶段顺序不可调换: 过滤必须在分页之前 所有者投影必须在最终成形之前
package projector

import (
	"PlayTube.com/cmd/model"
)

// Owner 所有者的公开子档案 只暴露固定字段 绝不携带凭证列
type Owner struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// ProjectOwner 把完整的User行裁剪成子档案
func ProjectOwner(u *model.User) *Owner {
	if u == nil {
		return nil
	}
	return &Owner{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}

// OwnerIndex 批量裁剪 按UserId索引
func OwnerIndex(users []*model.User) map[int64]*Owner {
	index := make(map[int64]*Owner, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		index[u.UserId] = ProjectOwner(u)
	}
	return index
}

// Relation 一条(目标, 行为者)关系行 点赞和订阅都归一成这个形状
type Relation struct {
	TargetId int64
	ActorId  int64
}

// RelationState derive阶段的输出: 每个目标的计数和viewer谓词
type RelationState struct {
	counts   map[int64]int64
	byViewer map[int64]bool
}

// DeriveRelationState 计算目标的关联计数和viewer相对谓词
// 没有关联行时计数为0 viewerId为0(匿名)时谓词恒为false 二者都不会出错
func DeriveRelationState(rows []Relation, viewerId int64) RelationState {
	state := RelationState{
		counts:   make(map[int64]int64, len(rows)),
		byViewer: make(map[int64]bool),
	}
	for _, row := range rows {
		state.counts[row.TargetId]++
		if viewerId != 0 && row.ActorId == viewerId {
			state.byViewer[row.TargetId] = true
		}
	}
	return state
}

// Count 目标的关联行数 未知目标返回0
func (s RelationState) Count(targetId int64) int64 {
	return s.counts[targetId]
}

// ViewerHas viewer是否对目标存在关系行
func (s RelationState) ViewerHas(targetId int64) bool {
	return s.byViewer[targetId]
}
