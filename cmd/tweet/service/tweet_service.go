package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/guard"
	"PlayTube.com/pkg/projector"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

const MaxTweetLength = 280

// TweetInfo 动态的响应视图
type TweetInfo struct {
	TweetId    int64            `json:"tweet_id"`
	Content    string           `json:"content"`
	Owner      *projector.Owner `json:"owner"`
	LikesCount int64            `json:"likes_count"`
	IsLiked    bool             `json:"is_liked"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type TweetList struct {
	Tweets   []*TweetInfo `json:"tweets"`
	Total    int64        `json:"total"`
	PageNum  int64        `json:"page_num"`
	PageSize int64        `json:"page_size"`
}

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.ParamErr.WithMessage("Tweet content is required")
	}
	if utf8.RuneCountInString(content) > MaxTweetLength {
		return errno.ParamErr.WithMessage("Tweet too long, maximum 280 characters allowed")
	}
	return nil
}

func (service *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{
		TweetId:   utils.GenerateId(),
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateTweet(service.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	return tweet, nil
}

func (service *TweetService) UpdateTweet(tweetId, userId int64, content string) (*model.Tweet, error) {
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	tweet, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetTweet failed")
	}
	if tweet == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Tweet not found")
	}
	if err := guard.OwnedBy(tweet.UserId, userId); err != nil {
		return nil, err
	}
	if err := db.UpdateTweetContent(service.ctx, tweetId, content); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateTweetContent failed")
	}
	tweet.Content = content
	return tweet, nil
}

func (service *TweetService) DeleteTweet(tweetId, userId int64) error {
	tweet, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetTweet failed")
	}
	if tweet == nil {
		return errno.RecordNotFoundErr.WithMessage("Tweet not found")
	}
	if err := guard.OwnedBy(tweet.UserId, userId); err != nil {
		return err
	}
	if err := db.DeleteTweet(service.ctx, tweetId); err != nil {
		return errors.WithMessage(err, "dao.DeleteTweet failed")
	}
	return nil
}

// UserTweets 某个用户的动态列表投影 创建时间倒序
func (service *TweetService) UserTweets(targetUserId, pageNum, pageSize, viewerId int64) (*TweetList, error) {
	user, err := db.GetUser(service.ctx, targetUserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}

	page := projector.NormalizePage(pageNum, pageSize)
	tweets, count, err := db.QueryUserTweets(service.ctx, targetUserId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserTweets failed")
	}

	infos, err := service.projectTweets(tweets, viewerId)
	if err != nil {
		return nil, err
	}
	return &TweetList{
		Tweets:   infos,
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}, nil
}

func (service *TweetService) projectTweets(tweets []*model.Tweet, viewerId int64) ([]*TweetInfo, error) {
	if len(tweets) == 0 {
		return []*TweetInfo{}, nil
	}

	tweetIds := make([]int64, 0, len(tweets))
	ownerIds := make([]int64, 0, len(tweets))
	for _, tweet := range tweets {
		tweetIds = append(tweetIds, tweet.TweetId)
		ownerIds = append(ownerIds, tweet.UserId)
	}

	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	likes, err := db.GetLikesByTweetIds(service.ctx, tweetIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikesByTweetIds failed")
	}

	ownerIndex := projector.OwnerIndex(owners)
	relations := make([]projector.Relation, 0, len(likes))
	for _, like := range likes {
		relations = append(relations, projector.Relation{TargetId: like.TweetId, ActorId: like.UserId})
	}
	likeState := projector.DeriveRelationState(relations, viewerId)

	infos := make([]*TweetInfo, 0, len(tweets))
	for _, tweet := range tweets {
		infos = append(infos, &TweetInfo{
			TweetId:    tweet.TweetId,
			Content:    tweet.Content,
			Owner:      ownerIndex[tweet.UserId],
			LikesCount: likeState.Count(tweet.TweetId),
			IsLiked:    likeState.ViewerHas(tweet.TweetId),
			CreatedAt:  tweet.CreatedAt,
			UpdatedAt:  tweet.UpdatedAt,
		})
	}
	return infos, nil
}
