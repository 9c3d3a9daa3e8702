// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/config"
	"campus-bot-go/internal/handler"
	"campus-bot-go/internal/middleware"
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/repository"
	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/database"
	"campus-bot-go/pkg/hash"
	"campus-bot-go/pkg/llm"
	"campus-bot-go/pkg/log"
	"campus-bot-go/pkg/token"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库和 Redis
	database.InitMySQL(cfg.MySQL.DSN())
	database.Migrate()
	database.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// 4. 初始化 Repository
	userRepo := repository.NewUserRepository(database.DB)
	modRepo := repository.NewModeratorRepository(database.DB)
	refRepo := repository.NewReferenceRepository(database.DB)
	chatLogRepo := repository.NewChatLogRepository(database.DB)

	// 5. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.Secret.Key, cfg.Session.ExpireHours)
	llmClient := llm.NewClient(cfg.Ollama)
	authService := service.NewAuthService(userRepo, modRepo, jwtManager, database.RDB)
	chatService := service.NewChatService(refRepo, chatLogRepo, llmClient)
	adminService := service.NewAdminService(refRepo)
	analyticsService := service.NewAnalyticsService(chatLogRepo)

	// 5.1 管理员账号由种子数据带外写入，不走应用注册流程
	seedModerator(modRepo, cfg.Seed)

	// 6. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 7. 注册路由
	authHandler := handler.NewAuthHandler(authService, cfg.Session)
	chatHandler := handler.NewChatHandler(chatService)
	adminHandler := handler.NewAdminHandler(adminService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)

	// 需要会话的路由
	authed := r.Group("/", middleware.SessionMiddleware(cfg.Session.CookieName, jwtManager, authService))
	{
		authed.POST("/logout", authHandler.Logout)

		student := authed.Group("/", middleware.RequireStudent())
		{
			student.GET("/chat", chatHandler.History)
			student.POST("/chat", chatHandler.Ask)
		}

		moderator := authed.Group("/", middleware.RequireModerator())
		{
			moderator.GET("/admin_dashboard", adminHandler.Dashboard)
			moderator.POST("/admin_dashboard", adminHandler.HandleAction)
			moderator.GET("/analytics", analyticsHandler.Overview)
		}
	}

	// 8. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}

// seedModerator 在管理员表为空时写入配置提供的种子账号（幂等）。
func seedModerator(modRepo repository.ModeratorRepository, seed config.SeedConfig) {
	if seed.ModID == "" || seed.ModPassword == "" {
		return
	}

	total, err := modRepo.Count()
	if err != nil {
		log.Error("seedModerator: 查询管理员数量失败", err)
		return
	}
	if total > 0 {
		return
	}

	hashedPassword, err := hash.HashPassword(seed.ModPassword)
	if err != nil {
		log.Error("seedModerator: 密码哈希失败", err)
		return
	}

	name := seed.ModName
	if name == "" {
		name = seed.ModID
	}
	mod := &model.Moderator{
		ModID:        seed.ModID,
		Name:         name,
		PasswordHash: hashedPassword,
	}
	if err := modRepo.Create(mod); err != nil {
		log.Error("seedModerator: 写入种子管理员失败", err)
		return
	}
	log.Infof("seedModerator: 已写入种子管理员 '%s'", seed.ModID)
}
