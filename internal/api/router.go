package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevare/platform-api/internal/api/handler"
	"github.com/elevare/platform-api/internal/api/middleware"
	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/service"
	"github.com/elevare/platform-api/internal/infrastructure/credential"
	mongodb "github.com/elevare/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/elevare/platform-api/internal/infrastructure/db/redis"
	"github.com/elevare/platform-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("elevare"))

	// --- Dependencies ---
	hasher := credential.NewBcryptHasher(10)
	cache := redisdb.NewCache(rdb)

	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	internshipRepo := mongodb.NewInternshipRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)

	userService := service.NewUserService(userRepo, hasher, jwtSecret, 24*time.Hour, log)
	courseService := service.NewCourseService(courseRepo, cache, log)
	internshipService := service.NewInternshipService(internshipRepo, cache, log)
	articleService := service.NewArticleService(articleRepo, cache, log)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	internshipHandler := handler.NewInternshipHandler(internshipService)
	blogHandler := handler.NewBlogHandler(articleService)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)

	// --- User aggregate ---
	users := e.Group("/api/users", authRequired)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.UpdateProfile)
	users.POST("/:id/enroll", userHandler.Enroll)
	users.PUT("/:id/courses/:courseId", userHandler.UpdateCourseProgress)
	users.POST("/:id/apply-internship", userHandler.ApplyInternship)
	users.POST("/:id/book-session", userHandler.BookSession)

	// --- Course catalog ---
	e.GET("/api/courses", courseHandler.List)
	e.GET("/api/courses/level/:level", courseHandler.ListByLevel)
	e.GET("/api/courses/:id", courseHandler.Get)

	// --- Internship listings ---
	e.GET("/api/internships", internshipHandler.List)
	e.GET("/api/internships/:id", internshipHandler.Get)
	e.POST("/api/internships", internshipHandler.Create, authRequired, adminOnly)
	e.PUT("/api/internships/:id", internshipHandler.Update, authRequired, adminOnly)
	e.DELETE("/api/internships/:id", internshipHandler.Delete, authRequired, adminOnly)

	// --- Blog ---
	e.GET("/api/blog", blogHandler.List)
	e.GET("/api/blog/category/:category", blogHandler.ListByCategory)
	e.GET("/api/blog/search/:query", blogHandler.Search)
	e.GET("/api/blog/:id", blogHandler.Get)

	// --- Health probes & observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
