package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/linguanest/lingua-back/docs"
	"github.com/linguanest/lingua-back/internal/auth"
	"github.com/linguanest/lingua-back/internal/config"
	"github.com/linguanest/lingua-back/internal/db"
	"github.com/linguanest/lingua-back/internal/models"
)

var logger *zap.Logger

// @title           LinguaNest API
// @version         1.0
// @description     Booking and back-office API for the LinguaNest tutoring site.
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	logger = log
	registerValidations()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/auth/login", auth.LoginHandler(cfg, log))
		api.GET("/courses", ListCourses)
		api.GET("/courses/:id", GetCourse)
		api.POST("/bookings", CreateBooking)
		api.GET("/testimonials", ListTestimonials)
		api.POST("/testimonials", CreateTestimonial)
		api.POST("/contact", SendContactMessage)
		api.GET("/teachers", ListTeachers)

		// Admin routes
		admin := api.Group("")
		admin.Use(auth.AuthMiddleware(cfg))
		{
			admin.GET("/auth/me", auth.MeHandler())

			admin.POST("/courses", CreateCourse)
			admin.PUT("/courses/:id", UpdateCourse)
			admin.DELETE("/courses/:id", DeleteCourse)

			admin.GET("/bookings", ListBookings)
			admin.GET("/bookings/export", ExportBookings)
			admin.PATCH("/bookings/:id/status", UpdateBookingStatus)

			admin.GET("/testimonials/pending", ListPendingTestimonials)
			admin.PATCH("/testimonials/:id/approve", ApproveTestimonial)
			admin.DELETE("/testimonials/:id", DeleteTestimonial)

			admin.GET("/contact/messages", ListMessages)
			admin.PATCH("/contact/messages/:id/read", MarkMessageRead)
			admin.DELETE("/contact/messages/:id", DeleteMessage)
		}
	}

	return r
}

// registerValidations adds the custom binding rules used by request DTOs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			return models.Weekdays[fl.Field().String()]
		})
		v.RegisterValidation("courselanguage", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == models.LanguageTurkish || s == models.LanguageEnglish
		})
		v.RegisterValidation("courselevel", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == models.LevelBeginner || s == models.LevelIntermediate || s == models.LevelAdvanced
		})
	}
}
