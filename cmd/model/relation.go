package model

import "time"

// Subscription 订阅关系 UserId为被订阅的频道 SubscriberId为订阅者
// (UserId, SubscriberId)至多一条 不允许自己订阅自己
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id"`
	UserId         int64     `json:"user_id"`
	SubscriberId   int64     `json:"subscriber_id"`
	CreatedAt      time.Time `json:"created_at"`
}
