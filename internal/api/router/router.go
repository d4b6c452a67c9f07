package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/config"
	"github.com/variablekhai/uum-timetable-planner/internal/api/handler"
	"github.com/variablekhai/uum-timetable-planner/internal/api/middleware"
	"github.com/variablekhai/uum-timetable-planner/pkg/jwt"
	"github.com/variablekhai/uum-timetable-planner/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Planner.ImportMaxBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// 学院与课程目录（浏览无需认证）
		departments := v1.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.GET("/:id/courses", h.Catalog.ListCourses)

			// 管理操作需要管理员 Token
			admin := departments.Group("")
			admin.Use(middleware.JWTAuth(jwtMgr), middleware.AdminOnly())
			{
				admin.POST("", h.Department.CreateDepartment)
				admin.PUT("/:id", h.Department.UpdateDepartment)
				admin.DELETE("/:id", h.Department.DeleteDepartment)
				admin.POST("/:id/catalog", h.Catalog.ImportCatalog)
				admin.DELETE("/:id/catalog", h.Catalog.ClearCatalog)
			}
		}

		// 选课规划（无需登录，以规划会话 ID 区分用户）
		planner := v1.Group("/planner")
		planner.Use(middleware.PlannerSession())
		{
			planner.GET("/selection", h.Planner.GetSelection)
			planner.POST("/selection", h.Planner.SelectCourse)
			planner.DELETE("/selection/:courseCode", h.Planner.DeselectCourse)
			planner.GET("/grid", h.Planner.GetGrid)
			planner.GET("/export/xlsx", h.Export.ExportXLSX)
			planner.GET("/export/ics", h.Export.ExportICS)
		}
	}

	return r
}
