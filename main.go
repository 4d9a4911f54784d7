package main

import (
	"context"
	"fmt"
	"time"

	"PlayTube.com/cmd/api/router"
	"PlayTube.com/cmd/dal/db"
	videoservice "PlayTube.com/cmd/video/service"
	"PlayTube.com/config"
	"PlayTube.com/config/pprof"
	"PlayTube.com/pkg/cache"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/jwt"
	"PlayTube.com/pkg/mq"
	"PlayTube.com/pkg/oss"
	"PlayTube.com/pkg/ratelimit"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	db.Init()
	jwt.Init()
	if err := cache.Init(); err != nil {
		hlog.Warnf("redis unavailable, counter cache disabled: %v", err)
	}
	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("minio init failed: %v", err)
	}

	rabbitmqURL := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr)
	if err := mq.InitProducer(rabbitmqURL); err != nil {
		hlog.Fatalf("rabbitmq producer init failed: %v", err)
	}
	consumer, err := mq.NewConsumer(rabbitmqURL)
	if err != nil {
		hlog.Fatalf("rabbitmq consumer init failed: %v", err)
	}
	go func() {
		if err := consumer.ConsumeVideoViewEvents(context.Background(), videoservice.NewViewEventProcessor()); err != nil {
			hlog.Errorf("view event consumer stopped: %v", err)
		}
	}()
}

func main() {
	Init()
	pprof.Load(":6060")
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(2*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(ratelimit.NewLimiter(cache.Client(), time.Minute, 600).Middleware())

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "Internal server error",
			})
		})))

	router.Register(r)
	r.Spin()
}
