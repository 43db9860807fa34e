package router

import (
	"net/http"

	"startup-hub-server/internal/middleware"
	"startup-hub-server/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
}

func NewRouter(appModules *modules.AppModules) *Router {
	return &Router{
		modules: appModules,
	}
}

// isUploadRoute 帖子创建/修改为 multipart 上传，由上传大小限制接管
func isUploadRoute(c *gin.Context) bool {
	method := c.Request.Method
	if method != http.MethodPost && method != http.MethodPatch {
		return false
	}
	path := c.FullPath()
	return path == "/api/posts" || path == "/api/posts/:id"
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(isUploadRoute))

	// 写操作限流：读取配置（在多个域路由中复用同一个实例，保持行为一致）
	writeLimiter := middleware.RateLimitMiddleware("write")

	registerPublicRoutes(api, rt.modules.PublicData.Handler)
	registerAuthRoutes(api, writeLimiter, rt.modules.User.Handler)
	registerPostRoutes(api, writeLimiter, rt.modules.Post.Handler, rt.modules.Favorite.Handler)
	registerReviewRoutes(api, writeLimiter, rt.modules.Review.Handler)
	registerPublicDataRoutes(api, writeLimiter, rt.modules.PublicData.Handler)
}
