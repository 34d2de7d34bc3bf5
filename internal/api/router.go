package api

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	docs "github.com/japb1998/outreach-crm/docs"
	"github.com/japb1998/outreach-crm/internal/controller"
	"github.com/japb1998/outreach-crm/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

const (
	ScopeName = "github.com/japb1998/outreach-crm/internal/api"
)

func InitRoutes() *gin.Engine {
	routerLogger.Info("Gin cold start")
	r := gin.Default()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
			field := fl.Field().String()
			if field == "" {
				// required handles empties
				return true
			}
			_, err := time.Parse(time.RFC3339, field)
			return err == nil
		})
	}
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = []string{"*"}

	// To be able to send tokens to the server.
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "GET", "PUT", "PATCH", "DELETE")

	r.Use(otelgin.Middleware(ScopeName))
	r.Use(cors.New(corsConfig))
	r.Use(requestIDMiddleware())
	r.Use(metrics.Middleware())

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(currentUserMiddleWare())

	api := r.Group("/api")

	// CLIENT ROUTER
	clients := api.Group("/clients")
	{
		clients.GET("", controller.GetClients)
		clients.POST("", controller.CreateClient)
		clients.PUT("/:id", controller.UpdateClient)
		clients.GET("/:id", controller.GetClientByID)
		clients.DELETE("/:id", controller.DeleteClient)
	}

	// TEMPLATE ROUTER
	templates := api.Group("/templates")
	{
		templates.GET("", controller.GetTemplates)
		templates.POST("", controller.CreateTemplate)
		templates.DELETE("/:id", controller.DeleteTemplate)
	}

	// FOLLOW-UP ROUTER
	followUps := api.Group("/follow-ups")
	{
		followUps.GET("", controller.GetFollowUps)
		followUps.POST("", controller.CreateFollowUp)
		followUps.GET("/upcoming", controller.GetUpcomingFollowUps)
		followUps.GET("/overdue", controller.GetOverdueFollowUps)
		followUps.PATCH("/:id", controller.UpdateFollowUp)
		followUps.DELETE("/:id", controller.DeleteFollowUp)
	}

	// MESSAGE ROUTER
	messages := api.Group("/messages")
	{
		messages.GET("", controller.GetMessages)
		messages.POST("/send", controller.SendMessage)
	}

	// AI ROUTER
	ai := api.Group("/ai")
	{
		ai.POST("/generate-message", controller.GenerateMessage)
		ai.POST("/optimize-message", controller.OptimizeMessage)
	}

	api.GET("/dashboard/stats", controller.GetDashboardStats)
	api.GET("/email/status", controller.GetEmailStatus)

	return r
}
