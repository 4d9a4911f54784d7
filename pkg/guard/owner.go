// Package guard 所有权校验 应用在Comment/Tweet/Video/Playlist的全部变更路径上
package guard

import "PlayTube.com/pkg/errno"

// OwnedBy 比较实体存储的所有者ID与调用者ID 不相等即拒绝
// 与调用者是否通过鉴权无关 不是所有者就是forbidden
func OwnedBy(ownerId, callerId int64) error {
	if callerId <= 0 {
		return errno.TokenInvailedErr
	}
	if ownerId != callerId {
		return errno.AuthorizationFailedErr
	}
	return nil
}
