package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/config"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the REST surface. Route layout and response envelopes
// follow what the frontend consumes, so the groups mirror the resources
// rather than the internal package structure.
func NewRouter(
	cfg *config.Config,
	logger logging.Logger,
	users *services.UserService,
	projects *services.ProjectService,
	resumes *services.ResumeService,
	contacts *services.ContactService,
	store storage.BlobStore,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(corsMiddleware(cfg.CORSOrigin))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Locally stored uploads are served straight from disk. The S3 store
	// hands out presigned URLs instead, so no route is needed there.
	if local, ok := store.(*storage.LocalStore); ok {
		r.Static("/uploads", local.Root())
	}

	authRequired := Authenticate(users)
	adminOnly := AdminOnly()

	authH := NewAuthHandler(users, cfg)
	projectH := NewProjectHandler(projects)
	resumeH := NewResumeHandler(resumes)
	contactH := NewContactHandler(contacts)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authRequired, adminOnly, authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authRequired, authH.Me)
	}

	proj := api.Group("/projects")
	{
		proj.GET("", projectH.List)
		proj.GET("/:id", projectH.Get)
		proj.POST("", authRequired, adminOnly, projectH.Create)
		proj.PUT("/:id", authRequired, adminOnly, projectH.Update)
		proj.DELETE("/:id", authRequired, adminOnly, projectH.Delete)
	}

	resume := api.Group("/resume")
	{
		resume.GET("/active", resumeH.Active)
		resume.POST("/upload", authRequired, adminOnly, resumeH.Upload)
		resume.GET("/all", authRequired, adminOnly, resumeH.List)
		resume.PUT("/activate/:id", authRequired, adminOnly, resumeH.Activate)
		resume.DELETE("/:id", authRequired, adminOnly, resumeH.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactH.Submit)
		contact.GET("", authRequired, adminOnly, contactH.List)
		contact.GET("/unread-count", authRequired, adminOnly, contactH.UnreadCount)
		contact.GET("/:id", authRequired, adminOnly, contactH.Get)
		contact.PUT("/:id/read", authRequired, adminOnly, contactH.MarkRead)
		contact.DELETE("/:id", authRequired, adminOnly, contactH.Delete)
	}

	return r
}
