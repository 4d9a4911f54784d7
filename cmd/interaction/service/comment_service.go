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

const (
	MaxCommentLength = 500 // 评论最大长度(字符)
	MinCommentLength = 1
)

// CommentInfo 评论的响应视图
type CommentInfo struct {
	CommentId  int64            `json:"comment_id"`
	VideoId    int64            `json:"video_id"`
	Content    string           `json:"content"`
	Owner      *projector.Owner `json:"owner"`
	LikesCount int64            `json:"likes_count"`
	IsLiked    bool             `json:"is_liked"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CommentList 空结果时Total为0 Comments为空数组而非null
type CommentList struct {
	Comments []*CommentInfo `json:"comments"`
	Total    int64          `json:"total"`
	PageNum  int64          `json:"page_num"`
	PageSize int64          `json:"page_size"`
}

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.ParamErr.WithMessage("Please provide content in the comment")
	}
	contentLength := utf8.RuneCountInString(content)
	if contentLength < MinCommentLength {
		return errno.ParamErr.WithMessage("Comment too short")
	}
	if contentLength > MaxCommentLength {
		return errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (service *CommentService) AddComment(videoId, userId int64, content string) (*model.Comment, error) {
	if err := service.validateCommentContent(content); err != nil {
		return nil, err
	}
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
	}

	comment := &model.Comment{
		CommentId: utils.GenerateId(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(commentId, userId int64, content string) (*model.Comment, error) {
	if err := service.validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetComment failed")
	}
	if comment == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Comment not found")
	}
	if err := guard.OwnedBy(comment.UserId, userId); err != nil {
		return nil, err
	}
	if err := db.UpdateCommentContent(service.ctx, commentId, content); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}
	comment.Content = content
	return comment, nil
}

func (service *CommentService) DeleteComment(commentId, userId int64) error {
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetComment failed")
	}
	if comment == nil {
		return errno.RecordNotFoundErr.WithMessage("Comment not found")
	}
	if err := guard.OwnedBy(comment.UserId, userId); err != nil {
		return err
	}
	if err := db.DeleteComment(service.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}
	return nil
}

// CommentList 视频的评论列表投影 创建时间倒序
func (service *CommentService) CommentList(videoId, pageNum, pageSize, viewerId int64) (*CommentList, error) {
	page := projector.NormalizePage(pageNum, pageSize)

	comments, count, err := db.QueryVideoComments(service.ctx, videoId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryVideoComments failed")
	}
	infos, err := service.projectComments(comments, viewerId)
	if err != nil {
		return nil, err
	}
	return &CommentList{
		Comments: infos,
		Total:    count,
		PageNum:  page.Num,
		PageSize: page.Size,
	}, nil
}

func (service *CommentService) projectComments(comments []*model.Comment, viewerId int64) ([]*CommentInfo, error) {
	if len(comments) == 0 {
		return []*CommentInfo{}, nil
	}

	commentIds := make([]int64, 0, len(comments))
	ownerIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIds = append(commentIds, comment.CommentId)
		ownerIds = append(ownerIds, comment.UserId)
	}

	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUsersByIds failed")
	}
	likes, err := db.GetLikesByCommentIds(service.ctx, commentIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLikesByCommentIds failed")
	}

	ownerIndex := projector.OwnerIndex(owners)
	relations := make([]projector.Relation, 0, len(likes))
	for _, like := range likes {
		relations = append(relations, projector.Relation{TargetId: like.CommentId, ActorId: like.UserId})
	}
	likeState := projector.DeriveRelationState(relations, viewerId)

	infos := make([]*CommentInfo, 0, len(comments))
	for _, comment := range comments {
		infos = append(infos, &CommentInfo{
			CommentId:  comment.CommentId,
			VideoId:    comment.VideoId,
			Content:    comment.Content,
			Owner:      ownerIndex[comment.UserId],
			LikesCount: likeState.Count(comment.CommentId),
			IsLiked:    likeState.ViewerHas(comment.CommentId),
			CreatedAt:  comment.CreatedAt,
			UpdatedAt:  comment.UpdatedAt,
		})
	}
	return infos, nil
}
