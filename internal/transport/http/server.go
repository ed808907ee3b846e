package http

import (
	"github.com/gin-gonic/gin"

	appsvc "agroassist/internal/app"
	"agroassist/internal/bootstrap"
	"agroassist/internal/transport/http/handler"
	"agroassist/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.BodyLimit(app.Config.App.BodyLimitBytes),
		middleware.Metrics(app.Metrics),
	)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)
	if app.Config.Metrics.Enabled {
		router.GET(app.Config.Metrics.Path, gin.WrapH(app.Metrics.Handler()))
	}

	leafService := appsvc.NewLeafService(app.Model, app.Metrics)
	pestService := appsvc.NewPestService(app.Weather, app.Metrics)
	leafHandler := handler.NewLeafHandler(leafService)
	soilHandler := handler.NewSoilHandler()
	pestHandler := handler.NewPestHandler(pestService)

	router.POST("/predict-leaf", leafHandler.Predict)
	router.POST("/analyze-soil", soilHandler.Analyze)
	router.POST("/pest-risk", pestHandler.Risk)

	return router
}
