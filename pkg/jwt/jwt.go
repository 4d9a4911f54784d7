package jwt

import (
	"context"
	"time"

	"PlayTube.com/config"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var AuthMiddleware *jwt.HertzJWTMiddleware

func Init() {
	var err error
	AuthMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "playtube",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  7 * 24 * time.Hour,
		IdentityKey: IdentityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[IdentityKey])
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.TokenInvailedErrCode,
				"message": message,
				"success": false,
			})
		},
		TokenLookup:   "header: Authorization, cookie: access_token",
		TokenHeadName: "Bearer",
	})
	if err != nil {
		panic(err)
	}
}

// Auth 强制鉴权 解析失败直接返回401
func Auth() app.HandlerFunc {
	return AuthMiddleware.MiddlewareFunc()
}

// OptionalAuth 尝试解析token 未携带或无效时作为匿名请求继续
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		claims, err := AuthMiddleware.GetClaimsFromJWT(ctx, c)
		if err == nil {
			if v, ok := claims[IdentityKey]; ok {
				c.Set(IdentityKey, utils.Transfer(v))
			}
		} else {
			hlog.Debugf("anonymous request: %v", err)
		}
		c.Next(ctx)
	}
}

// GetUserId 获取当前登录用户的ID
func GetUserId(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0, errno.TokenInvailedErr
	}
	userId := utils.Transfer(v)
	if userId <= 0 {
		return 0, errno.TokenInvailedErr
	}
	return userId, nil
}

// GetOptionalUserId 匿名请求返回0
func GetOptionalUserId(c *app.RequestContext) int64 {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0
	}
	userId := utils.Transfer(v)
	if userId <= 0 {
		return 0
	}
	return userId
}
