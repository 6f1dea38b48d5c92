package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "masjid/docs"
	"masjid/internal/domain"
	"masjid/internal/handler"
	"masjid/internal/middleware"
	"masjid/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Content      *handler.ContentHandler
	Profile      *handler.ProfileHandler
	Post         *handler.PostHandler
	Finance      *handler.FinanceHandler
	Consultation *handler.ConsultationHandler
	Assistant    *handler.AssistantHandler
	Media        *handler.MediaHandler
	Settings     *handler.SettingsHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, corsOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public content, guests included
	public := v1.Group("")
	public.Use(middleware.OptionalAuth(authSvc))
	public.GET("/home", h.Content.Home)
	public.GET("/prayer-times", h.Content.PrayerTimes)
	public.GET("/programs", h.Content.Programs)
	public.GET("/bank-accounts", h.Content.BankAccounts)
	public.GET("/gallery", h.Content.Gallery)
	public.GET("/profile", h.Profile.Get)
	public.GET("/profile/org-chart", h.Profile.OrgChart)
	public.GET("/posts", h.Post.List)
	public.GET("/posts/:id", h.Post.Get)
	public.GET("/finance", h.Finance.Report)
	public.GET("/finance/export.csv", h.Finance.ExportCSV)
	public.GET("/finance/export.xlsx", h.Finance.ExportXLSX)

	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/assistant/chat", h.Assistant.Chat)

	consultations := protected.Group("/consultations")
	consultations.GET("", h.Consultation.List)
	consultations.POST("", h.Consultation.Submit)
	consultations.POST("/:id/answer", middleware.RequireUstadz(), h.Consultation.Answer)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/connect", h.Settings.Connect)
	admin.GET("/settings/content-source", h.Settings.GetContentSource)
	admin.PUT("/settings/content-source", h.Settings.PutContentSource)
	admin.DELETE("/settings/content-source", h.Settings.DeleteContentSource)
	admin.POST("/media", h.Media.Upload)
	admin.DELETE("/media/*key", h.Media.Delete)

	return r
}
