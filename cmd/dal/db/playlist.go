package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed,err:%v", err)
	}
	return nil
}

// GetPlaylist 不存在时返回(nil, nil)
func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetPlaylist failed,err:%v", err)
	}
	return &playlist, nil
}

func UpdatePlaylistInfo(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylistInfo failed,err:%v", err)
	}
	return nil
}

// DeletePlaylist 同时清掉收藏夹内的视频关联
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed,err:%v", err)
	}
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist videos failed,err:%v", err)
	}
	return nil
}

// QueryUserPlaylists 用户的收藏夹列表 创建时间倒序
func QueryUserPlaylists(ctx context.Context, userId, limit, offset int64) ([]*model.Playlist, int64, error) {
	playlists := make([]*model.Playlist, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).
		Count(&count).Order("created_at DESC").
		Limit(int(limit)).Offset(int(offset)).Find(&playlists).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryUserPlaylists failed,err:%v", err)
	}
	return playlists, count, nil
}

// GetPlaylistVideo 判断视频是否已在收藏夹中 不存在时返回(nil, nil)
func GetPlaylistVideo(ctx context.Context, playlistId, videoId int64) (*model.PlaylistVideo, error) {
	var playlistVideo model.PlaylistVideo
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).First(&playlistVideo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetPlaylistVideo failed,err:%v", err)
	}
	return &playlistVideo, nil
}

func AddPlaylistVideo(ctx context.Context, playlistVideo *model.PlaylistVideo) error {
	if err := DB.WithContext(ctx).Create(playlistVideo).Error; err != nil {
		return errors.Wrapf(err, "AddPlaylistVideo failed,err:%v", err)
	}
	return nil
}

func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemovePlaylistVideo failed,err:%v", err)
	}
	return nil
}

// GetMaxPlaylistPosition 新视频追加到收藏夹末尾
func GetMaxPlaylistPosition(ctx context.Context, playlistId int64) (int64, error) {
	var maxPosition *int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Select("MAX(position)").Scan(&maxPosition).Error; err != nil {
		return 0, errors.Wrapf(err, "GetMaxPlaylistPosition failed,err:%v", err)
	}
	if maxPosition == nil {
		return 0, nil
	}
	return *maxPosition, nil
}

// GetPlaylistVideos 收藏夹内视频 按加入顺序
func GetPlaylistVideos(ctx context.Context, playlistId int64) ([]*model.PlaylistVideo, error) {
	playlistVideos := make([]*model.PlaylistVideo, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("position ASC").Find(&playlistVideos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylistVideos failed,err:%v", err)
	}
	return playlistVideos, nil
}

// GetPlaylistVideosByPlaylistIds lookup阶段的批量查询
func GetPlaylistVideosByPlaylistIds(ctx context.Context, playlistIds []int64) ([]*model.PlaylistVideo, error) {
	playlistVideos := make([]*model.PlaylistVideo, 0)
	if len(playlistIds) == 0 {
		return playlistVideos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id IN (?)", playlistIds).Order("position ASC").Find(&playlistVideos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylistVideosByPlaylistIds failed,err:%v", err)
	}
	return playlistVideos, nil
}
