package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/database"
	"community-board-api/internal/handler"
	"community-board-api/internal/metrics"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/service"
)

// Config holds router dependencies
type Config struct {
	DB         *gorm.DB
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	BasePath   string
	JWTSecret  string
	JWTEnabled bool
	Redis      *redis.Client
}

// Setup creates and configures the Gin router with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	likeRepo := repository.NewBoardLikeRepository(cfg.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, userRepo, commentRepo, likeRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, boardRepo, userRepo, cfg.Metrics, cfg.Logger)
	likeService := service.NewBoardLikeService(likeRepo, boardRepo, cfg.Redis, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewBoardLikeHandler(likeService)

	// Operational endpoints live at the root path so probes and scrapers
	// work regardless of the configured base path
	registerOpsRoutes(r.Group(""))

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		// ALB 라우팅 환경에서는 base path 아래로도 노출
		registerOpsRoutes(api)
	}

	if cfg.JWTEnabled {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}

	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:userId", userHandler.GetUser)
	}

	boards := api.Group("/boards")
	{
		boards.POST("", boardHandler.CreateBoard)
		boards.GET("", boardHandler.GetAllBoards)
		boards.GET("/page", boardHandler.GetBoardsPaged)
		boards.GET("/page/secured", boardHandler.GetBoardsPagedSecured)
		boards.GET("/stats", boardHandler.GetBoardStats)
		boards.GET("/type/:boardType", boardHandler.GetBoardsByType)
		boards.GET("/type/:boardType/page", boardHandler.GetBoardsByTypePaged)
		boards.GET("/type/:boardType/secured", boardHandler.GetBoardsByTypeSecured)

		boards.GET("/:boardId", boardHandler.GetBoard)
		boards.PUT("/:boardId", boardHandler.UpdateBoard)
		boards.DELETE("/:boardId", boardHandler.DeleteBoard)

		boards.POST("/:boardId/comments", commentHandler.CreateComment)
		boards.GET("/:boardId/comments", commentHandler.GetComments)
		boards.GET("/:boardId/comments/count", commentHandler.CountComments)
		boards.PUT("/:boardId/comments/:commentId", commentHandler.UpdateComment)
		boards.DELETE("/:boardId/comments/:commentId", commentHandler.DeleteComment)

		boards.POST("/:boardId/likes/toggle", likeHandler.ToggleLike)
		boards.GET("/:boardId/likes", likeHandler.GetLikeStatus)
		boards.GET("/:boardId/likes/count", likeHandler.GetLikeCount)
	}

	return r
}

// registerOpsRoutes registers health, metrics and swagger endpoints on the
// given group
func registerOpsRoutes(group *gin.RouterGroup) {
	group.GET("/health", healthCheck)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck reports process liveness and database connectivity against
// the process-wide handle.
// DB가 끊겨도 200을 반환한다 - 연결 상태는 본문으로 구분한다.
func healthCheck(c *gin.Context) {
	dbStatus := "disconnected"
	if database.IsConnected() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
