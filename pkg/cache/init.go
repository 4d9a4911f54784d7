package cache

import (
	"context"

	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func Init() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		hlog.Errorf("Failed to connect redis: %v", err)
		return err
	}
	hlog.Info("Connect Redis Success")
	return nil
}

func Client() *redis.Client {
	return rdb
}
