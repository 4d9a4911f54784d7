package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	videoservice "PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/cache"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/projector"
	"github.com/pkg/errors"
)

// UserInfo 当前登录用户的完整档案
type UserInfo struct {
	UserId    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	AvatarUrl string    `json:"avatar_url"`
	CoverUrl  string    `json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelProfile 频道主页投影 订阅量与观察者订阅态在读取时派生
type ChannelProfile struct {
	UserId            int64  `json:"user_id"`
	UserName          string `json:"user_name"`
	FullName          string `json:"full_name"`
	AvatarUrl         string `json:"avatar_url"`
	CoverUrl          string `json:"cover_url"`
	SubscribersCount  int64  `json:"subscribers_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
	VideoCount        int64  `json:"video_count"`
}

type WatchHistoryList struct {
	Videos   []*videoservice.VideoInfo `json:"videos"`
	Total    int64                     `json:"total"`
	PageNum  int64                     `json:"page_num"`
	PageSize int64                     `json:"page_size"`
}

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

func (service *UserService) CurrentUser(userId int64) (*UserInfo, error) {
	user, err := db.GetUser(service.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}
	return &UserInfo{
		UserId:    user.UserId,
		UserName:  user.UserName,
		FullName:  user.FullName,
		AvatarUrl: user.AvatarUrl,
		CoverUrl:  user.CoverUrl,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ChannelProfileByName 按用户名查频道主页
func (service *UserService) ChannelProfileByName(userName string, viewerId int64) (*ChannelProfile, error) {
	if userName == "" {
		return nil, errno.ParamErr.WithMessage("Username is required")
	}
	user, err := db.GetUserByName(service.ctx, userName)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByName failed")
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Channel not found")
	}

	counter := cache.NewCounterCacheManager(cache.Client())
	subscribersCount, ok := counter.GetChannelSubscriberCount(service.ctx, user.UserId)
	if !ok {
		subscribersCount, err = db.CountChannelSubscribers(service.ctx, user.UserId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.CountChannelSubscribers failed")
		}
		counter.SetChannelSubscriberCount(service.ctx, user.UserId, subscribersCount)
	}
	subscribedToCount, err := db.CountSubscribedChannels(service.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribedChannels failed")
	}
	videoCount, err := db.CountUserVideos(service.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountUserVideos failed")
	}

	isSubscribed := false
	if viewerId > 0 {
		subscription, err := db.GetSubscription(service.ctx, user.UserId, viewerId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetSubscription failed")
		}
		isSubscribed = subscription != nil
	}

	return &ChannelProfile{
		UserId:            user.UserId,
		UserName:          user.UserName,
		FullName:          user.FullName,
		AvatarUrl:         user.AvatarUrl,
		CoverUrl:          user.CoverUrl,
		SubscribersCount:  subscribersCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
		VideoCount:        videoCount,
	}, nil
}

// WatchHistory 观看历史 按观看时间倒序 投影成视频视图
func (service *UserService) WatchHistory(userId, pageNum, pageSize int64) (*WatchHistoryList, error) {
	page := projector.NormalizePage(pageNum, pageSize)
	histories, count, err := db.QueryWatchHistory(service.ctx, userId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryWatchHistory failed")
	}

	list := &WatchHistoryList{
		Videos:   []*videoservice.VideoInfo{},
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}
	if len(histories) == 0 {
		return list, nil
	}

	videoIds := make([]int64, 0, len(histories))
	for _, history := range histories {
		videoIds = append(videoIds, history.VideoId)
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}
	// 按观看时间顺序回填
	videoIndex := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoIndex[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videos))
	for _, history := range histories {
		if video, ok := videoIndex[history.VideoId]; ok {
			ordered = append(ordered, video)
		}
	}

	infos, err := videoservice.ProjectVideos(service.ctx, ordered, userId)
	if err != nil {
		return nil, err
	}
	list.Videos = infos
	return list, nil
}
