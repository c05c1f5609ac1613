package router

import (
	"log"
	"os"
	"time"

	"github.com/genfuture/careers-api/config"
	"github.com/genfuture/careers-api/database"
	"github.com/genfuture/careers-api/handlers"
	auth_handlers "github.com/genfuture/careers-api/handlers/auth"
	career_handlers "github.com/genfuture/careers-api/handlers/career"
	course_handlers "github.com/genfuture/careers-api/handlers/course"
	external_handlers "github.com/genfuture/careers-api/handlers/external"
	university_handlers "github.com/genfuture/careers-api/handlers/university"
	"github.com/genfuture/careers-api/services/careers"
	"github.com/genfuture/careers-api/utils/auth"
	"github.com/genfuture/careers-api/utils/cache"
	"github.com/genfuture/careers-api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	env, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load environment configuration:", err)
	}

	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "genfuture-careers-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,     // Access token expires in 24 hours
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs login brute force protection. The API stays usable
	// without it, just without lockouts.
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	universityHandler := university_handlers.NewUniversityHandler(db)
	courseHandler := course_handlers.NewCourseHandler(db)
	careerPathHandler := career_handlers.NewCareerPathHandler(db)

	aggregator := careers.NewAggregator(env.ONET_API_KEY, env.BLS_API_KEY)
	externalHandler := external_handlers.NewExternalHandler(db, aggregator)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health endpoints (public)
	app.Get("/healthz", handlers.Liveness)
	app.Get("/readyz", handlers.Readiness(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection when Redis is available
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Universities routes. The nearby routes must be registered before
	// /:id so "nearby" is not captured as an ID.
	universities := api.Group("/universities")
	universities.Get("/nearby", universityHandler.NearbyUniversities)          // Public: Rank by proximity, full entities
	universities.Get("/nearby-lite", universityHandler.NearbyUniversitiesLite) // Public: Rank by proximity, flat projection
	universities.Get("/", universityHandler.ListUniversities)                  // Public: List all universities
	universities.Get("/:id", universityHandler.GetUniversity)                  // Public: Get university by ID
	universities.Get("/:id/courses", courseHandler.ListByUniversity)           // Public: List courses for a university

	universities.Post("/", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "university_create", "universities"),
		universityHandler.CreateUniversity) // Admin only
	universities.Put("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "university_update", "universities"),
		universityHandler.UpdateUniversity) // Admin only
	universities.Delete("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "university_delete", "universities"),
		universityHandler.DeleteUniversity) // Admin only

	// Courses routes
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)                     // Public: List all courses
	courses.Get("/:id", courseHandler.GetCourse)                    // Public: Get course by ID
	courses.Get("/:id/career-paths", careerPathHandler.ListByCourse) // Public: List career paths for a course

	courses.Post("/", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "course_create", "courses"),
		courseHandler.CreateCourse) // Admin only
	courses.Put("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "course_update", "courses"),
		courseHandler.UpdateCourse) // Admin only
	courses.Delete("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "course_delete", "courses"),
		courseHandler.DeleteCourse) // Admin only

	// Career path routes (admin mutations only; reads go through
	// /courses/:id/career-paths or the external merge endpoint)
	careerPaths := api.Group("/career-paths")
	careerPaths.Post("/", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "career_path_create", "career_paths"),
		careerPathHandler.CreateCareerPath) // Admin only
	careerPaths.Put("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "career_path_update", "career_paths"),
		careerPathHandler.UpdateCareerPath) // Admin only
	careerPaths.Delete("/:id", authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "career_path_delete", "career_paths"),
		careerPathHandler.DeleteCareerPath) // Admin only

	// External data routes (public, fallback-protected)
	externalGroup := api.Group("/external")
	externalGroup.Get("/universities/search", externalHandler.SearchUniversities)       // Public: Directory search with reconciliation
	externalGroup.Get("/careers/by-course/:course_id", externalHandler.CareersByCourse) // Public: Merged career outcomes
}
