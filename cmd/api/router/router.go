package router

import (
	"context"

	common "PlayTube.com/cmd/api/handlers"
	"PlayTube.com/cmd/api/handlers/interaction"
	"PlayTube.com/cmd/api/handlers/playlist"
	"PlayTube.com/cmd/api/handlers/relation"
	"PlayTube.com/cmd/api/handlers/tweet"
	"PlayTube.com/cmd/api/handlers/user"
	"PlayTube.com/cmd/api/handlers/video"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register 注册全部路由
func Register(r *server.Hertz) {
	r.GET("/healthz", func(ctx context.Context, c *app.RequestContext) {
		common.SendResponse(c, errno.Success, map[string]interface{}{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")

	videos := apiV1.Group("/videos")
	{
		videos.GET("", jwt.OptionalAuth(), video.VideoList)
		videos.POST("", jwt.Auth(), video.PublishVideo)
		videos.GET("/:videoId", jwt.OptionalAuth(), video.VideoDetail)
		videos.PATCH("/:videoId", jwt.Auth(), video.UpdateVideo)
		videos.DELETE("/:videoId", jwt.Auth(), video.DeleteVideo)
		videos.PATCH("/toggle/:videoId", jwt.Auth(), video.TogglePublish)
	}

	comments := apiV1.Group("/comments")
	{
		comments.GET("/:videoId", jwt.OptionalAuth(), interaction.CommentList)
		comments.POST("/:videoId", jwt.Auth(), interaction.AddComment)
		comments.PATCH("/c/:commentId", jwt.Auth(), interaction.UpdateComment)
		comments.DELETE("/c/:commentId", jwt.Auth(), interaction.DeleteComment)
	}

	likes := apiV1.Group("/likes", jwt.Auth())
	{
		likes.POST("/toggle/v/:videoId", interaction.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", interaction.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", interaction.ToggleTweetLike)
		likes.GET("/videos", interaction.LikedVideos)
	}

	tweets := apiV1.Group("/tweets")
	{
		tweets.POST("", jwt.Auth(), tweet.CreateTweet)
		tweets.GET("/user/:userId", jwt.OptionalAuth(), tweet.UserTweets)
		tweets.PATCH("/:tweetId", jwt.Auth(), tweet.UpdateTweet)
		tweets.DELETE("/:tweetId", jwt.Auth(), tweet.DeleteTweet)
	}

	subscriptions := apiV1.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", jwt.Auth(), relation.ToggleSubscription)
		subscriptions.GET("/c/:channelId", jwt.OptionalAuth(), relation.ChannelSubscribers)
		subscriptions.GET("/s/:subscriberId", jwt.OptionalAuth(), relation.SubscribedChannels)
	}

	playlists := apiV1.Group("/playlists")
	{
		playlists.POST("", jwt.Auth(), playlist.CreatePlaylist)
		playlists.GET("/:playlistId", jwt.OptionalAuth(), playlist.PlaylistDetail)
		playlists.PATCH("/:playlistId", jwt.Auth(), playlist.UpdatePlaylist)
		playlists.DELETE("/:playlistId", jwt.Auth(), playlist.DeletePlaylist)
		playlists.PATCH("/add/:playlistId/:videoId", jwt.Auth(), playlist.AddVideoToPlaylist)
		playlists.PATCH("/remove/:playlistId/:videoId", jwt.Auth(), playlist.RemoveVideoFromPlaylist)
		playlists.GET("/user/:userId", playlist.UserPlaylists)
	}

	users := apiV1.Group("/users")
	{
		users.GET("/current", jwt.Auth(), user.CurrentUser)
		users.GET("/c/:userName", jwt.OptionalAuth(), user.ChannelProfile)
		users.GET("/history", jwt.Auth(), user.WatchHistory)
	}
}
