package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/consts"
	"startup-hub-server/internal/db"
	"startup-hub-server/internal/di"
	"startup-hub-server/internal/middleware"
	platformservice "startup-hub-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap 加载 .env 与配置文件，连接数据库并组装应用
func bootstrap(configDir string) *di.Application {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ 读取 .env 失败: %v", err)
	}

	config.InitConfig(configDir)
	db.InitDB()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		log.Fatalf("❌ 应用初始化失败: %v", err)
	}
	return app
}

func shutdown() {
	if err := platformservice.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("⚠️ 关闭数据库连接失败: %v", err)
	}
}

func runServer(app *di.Application, exportRoutes bool) {
	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	applyTrustedProxies(r, config.Get().Server.TrustedProxies)
	app.Router.Init(r)

	if cfg := config.Get().Storage; cfg.Driver == "" || cfg.Driver == "local" {
		mediaPath := ensureMediaDirectory(cfg.Local)
		// 使用带缓存控制的静态文件服务
		r.Group(mediaURLPrefix(cfg.Local.URLPrefix), middleware.StaticCacheMiddleware()).
			StaticFS("", gin.Dir(mediaPath, false))
	}

	r.NoRoute(getNoRouteHandler())

	// 导出模式
	if exportRoutes {
		exportAPI(r)
		return // 导出后直接退出程序，不启动 Web 服务
	}

	// 打印启动欢迎语
	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	log.Println("✅ 服务已退出")
}

func getNoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}

func ensureMediaDirectory(cfg config.LocalStorageConfig) string {
	mediaPath := cfg.Path
	if mediaPath == "" {
		mediaPath = "uploads/post_images"
	}
	checkSecurePath(mediaPath)
	if err := os.MkdirAll(mediaPath, 0755); err != nil {
		log.Fatal("❌ 无法创建图片目录: ", err)
	}
	return mediaPath
}

func mediaURLPrefix(prefix string) string {
	if prefix == "" {
		prefix = "/media/"
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

func applyTrustedProxies(r *gin.Engine, raw string) {
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Printf("⚠️ trusted_proxies 配置无效，已禁用代理信任: %v", err)
		_ = r.SetTrustedProxies(nil)
	}
}

func printWelcomeMessage() {
	cfg := config.Get()
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🖼️  存储     : %s\n", cfg.Storage.Driver)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	var exportList []RouteInfo
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, _ := json.MarshalIndent(exportList, "", "  ")
	_ = os.WriteFile("routes.json", file, 0644)

	println("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	if err := securePathError(cwd, absPath); err != nil {
		log.Fatalf("❌ 安全配置错误: 静态资源目录 '%s' %v", path, err)
	}
}

// 允许作为静态资源目录的项目内子目录
var allowedMediaDirs = []string{
	"uploads",
	"public",
	"media",
	"static",
	"tmp",
}

// securePathError 位于项目目录内的路径只能落在安全子目录中，项目目录外的路径不做限制
func securePathError(cwd, absPath string) error {
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}
	if rel == "." {
		return fmt.Errorf("不能设置为项目根目录")
	}

	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedMediaDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("必须位于项目根目录下的安全子目录中 (如 %v)，以防暴露源代码或配置文件", allowedMediaDirs)
}
