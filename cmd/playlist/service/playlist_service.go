package service

import (
	"context"
	"strings"
	"time"

	"PlayTube.com/cmd/dal/db"
	"PlayTube.com/cmd/model"
	videoservice "PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/guard"
	"PlayTube.com/pkg/projector"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// PlaylistInfo 合集详情投影 附带视频列表与聚合统计
type PlaylistInfo struct {
	PlaylistId  int64                     `json:"playlist_id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Owner       *projector.Owner          `json:"owner"`
	Videos      []*videoservice.VideoInfo `json:"videos"`
	TotalVideos int64                     `json:"total_videos"`
	TotalViews  int64                     `json:"total_views"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// PlaylistSummary 合集列表项 不展开视频
type PlaylistSummary struct {
	PlaylistId  int64            `json:"playlist_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Owner       *projector.Owner `json:"owner"`
	TotalVideos int64            `json:"total_videos"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PlaylistList struct {
	Playlists []*PlaylistSummary `json:"playlists"`
	Total     int64              `json:"total"`
	PageNum   int64              `json:"page_num"`
	PageSize  int64              `json:"page_size"`
}

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (service *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.ParamErr.WithMessage("Playlist name is required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateId(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	return playlist, nil
}

// PlaylistDetail 合集详情 视频按加入顺序排列 只含已发布视频
func (service *PlaylistService) PlaylistDetail(playlistId, viewerId int64) (*PlaylistInfo, error) {
	playlist, err := db.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylist failed")
	}
	if playlist == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
	}

	owner, err := db.GetUser(service.ctx, playlist.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}

	entries, err := db.GetPlaylistVideos(service.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylistVideos failed")
	}
	videoIds := make([]int64, 0, len(entries))
	for _, entry := range entries {
		videoIds = append(videoIds, entry.VideoId)
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideosByIds failed")
	}
	// 保持合集内顺序
	videoIndex := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoIndex[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videos))
	var totalViews int64
	for _, entry := range entries {
		if video, ok := videoIndex[entry.VideoId]; ok {
			ordered = append(ordered, video)
			totalViews += video.VisitCount
		}
	}

	infos, err := videoservice.ProjectVideos(service.ctx, ordered, viewerId)
	if err != nil {
		return nil, err
	}
	return &PlaylistInfo{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       projector.ProjectOwner(owner),
		Videos:      infos,
		TotalVideos: int64(len(ordered)),
		TotalViews:  totalViews,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}, nil
}

func (service *PlaylistService) UpdatePlaylist(playlistId, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.ParamErr.WithMessage("Playlist name is required")
	}
	playlist, err := service.ownedPlaylist(playlistId, userId)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":        name,
		"description": description,
		"updated_at":  time.Now(),
	}
	if err := db.UpdatePlaylistInfo(service.ctx, playlistId, updates); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePlaylistInfo failed")
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (service *PlaylistService) DeletePlaylist(playlistId, userId int64) error {
	if _, err := service.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(service.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "dao.DeletePlaylist failed")
	}
	return nil
}

// AddVideo 向合集追加视频 重复加入视为已存在
func (service *PlaylistService) AddVideo(playlistId, videoId, userId int64) error {
	if _, err := service.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.RecordNotFoundErr.WithMessage("Video not found")
	}
	existing, err := db.GetPlaylistVideo(service.ctx, playlistId, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetPlaylistVideo failed")
	}
	if existing != nil {
		return errno.RecordAlreadyExistErr.WithMessage("Video already in playlist")
	}
	position, err := db.GetMaxPlaylistPosition(service.ctx, playlistId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetMaxPlaylistPosition failed")
	}
	entry := &model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		Position:   position + 1,
		CreatedAt:  time.Now(),
	}
	if err := db.AddPlaylistVideo(service.ctx, entry); err != nil {
		return errors.WithMessage(err, "dao.AddPlaylistVideo failed")
	}
	return nil
}

func (service *PlaylistService) RemoveVideo(playlistId, videoId, userId int64) error {
	if _, err := service.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	existing, err := db.GetPlaylistVideo(service.ctx, playlistId, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetPlaylistVideo failed")
	}
	if existing == nil {
		return errno.RecordNotFoundErr.WithMessage("Video not in playlist")
	}
	if err := db.RemovePlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		return errors.WithMessage(err, "dao.RemovePlaylistVideo failed")
	}
	return nil
}

// UserPlaylists 某用户的合集列表
func (service *PlaylistService) UserPlaylists(targetUserId, pageNum, pageSize int64) (*PlaylistList, error) {
	user, err := db.GetUser(service.ctx, targetUserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}

	page := projector.NormalizePage(pageNum, pageSize)
	playlists, count, err := db.QueryUserPlaylists(service.ctx, targetUserId, page.Limit(), page.Offset())
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserPlaylists failed")
	}

	list := &PlaylistList{
		Playlists: []*PlaylistSummary{},
		Total:     count,
		PageNum:   page.Num,
		PageSize:  page.Size,
	}
	if len(playlists) == 0 {
		return list, nil
	}

	playlistIds := make([]int64, 0, len(playlists))
	for _, playlist := range playlists {
		playlistIds = append(playlistIds, playlist.PlaylistId)
	}
	entries, err := db.GetPlaylistVideosByPlaylistIds(service.ctx, playlistIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylistVideosByPlaylistIds failed")
	}
	videoCounts := make(map[int64]int64, len(playlists))
	for _, entry := range entries {
		videoCounts[entry.PlaylistId]++
	}
	owner := projector.ProjectOwner(user)
	for _, playlist := range playlists {
		list.Playlists = append(list.Playlists, &PlaylistSummary{
			PlaylistId:  playlist.PlaylistId,
			Name:        playlist.Name,
			Description: playlist.Description,
			Owner:       owner,
			TotalVideos: videoCounts[playlist.PlaylistId],
			CreatedAt:   playlist.CreatedAt,
			UpdatedAt:   playlist.UpdatedAt,
		})
	}
	return list, nil
}

func (service *PlaylistService) ownedPlaylist(playlistId, userId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylist failed")
	}
	if playlist == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
	}
	if err := guard.OwnedBy(playlist.UserId, userId); err != nil {
		return nil, err
	}
	return playlist, nil
}
