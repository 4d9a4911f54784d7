package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err:%v", err)
	}
	return nil
}

// GetComment 不存在时返回(nil, nil)
func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetComment failed,err:%v", err)
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed,err:%v", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed,err:%v", err)
	}
	return nil
}

// QueryVideoComments 获取视频的评论列表 创建时间倒序
func QueryVideoComments(ctx context.Context, videoId, limit, offset int64) ([]*model.Comment, int64, error) {
	comments := make([]*model.Comment, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideoComments failed,err:%v", err)
	}
	return comments, count, nil
}

// GetVideoLike toggle的状态检查 不存在时返回(nil, nil)
func GetVideoLike(ctx context.Context, videoId, userId int64) (*model.Like, error) {
	return getLike(ctx, "video_id", videoId, userId)
}

func GetCommentLike(ctx context.Context, commentId, userId int64) (*model.Like, error) {
	return getLike(ctx, "comment_id", commentId, userId)
}

func GetTweetLike(ctx context.Context, tweetId, userId int64) (*model.Like, error) {
	return getLike(ctx, "tweet_id", tweetId, userId)
}

func getLike(ctx context.Context, targetColumn string, targetId, userId int64) (*model.Like, error) {
	var like model.Like
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where(targetColumn+" = ? And user_id = ?", targetId, userId).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "getLike failed,err:%v", err)
	}
	return &like, nil
}

func CreateLike(ctx context.Context, like *model.Like) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		return errors.Wrapf(err, "CreateLike failed,err:%v", err)
	}
	return nil
}

func DeleteLike(ctx context.Context, likeId int64) error {
	if err := DB.WithContext(ctx).Where("like_id = ?", likeId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLike failed,err:%v", err)
	}
	return nil
}

// GetLikesByVideoIds lookup阶段的批量查询
func GetLikesByVideoIds(ctx context.Context, videoIds []int64) ([]*model.Like, error) {
	return getLikesByTargets(ctx, "video_id", videoIds)
}

func GetLikesByCommentIds(ctx context.Context, commentIds []int64) ([]*model.Like, error) {
	return getLikesByTargets(ctx, "comment_id", commentIds)
}

func GetLikesByTweetIds(ctx context.Context, tweetIds []int64) ([]*model.Like, error) {
	return getLikesByTargets(ctx, "tweet_id", tweetIds)
}

func getLikesByTargets(ctx context.Context, targetColumn string, targetIds []int64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	if len(targetIds) == 0 {
		return likes, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where(targetColumn+" IN (?)", targetIds).Find(&likes).Error; err != nil {
		return nil, errors.Wrapf(err, "getLikesByTargets failed,err:%v", err)
	}
	return likes, nil
}

// QueryLikedVideoIds 用户点赞过的视频ID 点赞时间倒序
func QueryLikedVideoIds(ctx context.Context, userId, limit, offset int64) ([]int64, int64, error) {
	videoIds := make([]int64, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And video_id > 0", userId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).
		Select("video_id").Scan(&videoIds).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryLikedVideoIds failed,err:%v", err)
	}
	return videoIds, count, nil
}

func CountVideoLikes(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideoLikes failed,err:%v", err)
	}
	return count, nil
}
