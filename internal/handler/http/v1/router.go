package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты городского каталога и оценки риска
	cities := api.Group("/cities")
	{
		cities.GET("", h.listCities)
		cities.GET("/:id", h.getCity)
		cities.GET("/:id/risk", h.getCityRisk)
	}

	// Каталог заболеваний и сводная статистика
	api.GET("/risks", h.listHealthRisks)
	api.GET("/stats", h.getStats)

	// Геолокация
	location := api.Group("/location")
	{
		location.POST("/nearest", h.nearestCity)
		location.POST("/detect", h.detectLocation)
	}

	// Персональная оценка
	assessment := api.Group("/assessment")
	{
		assessment.POST("/predictions", h.predictTimeline)
		assessment.POST("/questionnaire", h.submitQuestionnaire)
	}

	// Профиль и история воздействий
	api.GET("/profile", h.getProfile)
	api.DELETE("/profile", h.resetProfile)
	api.GET("/history", h.getHistory)
	api.POST("/history", h.addExposure)

	// Сессии таймера воздействия
	timers := api.Group("/timers")
	{
		timers.POST("", h.createTimer)
		timers.GET("/:id", h.getTimer)
		timers.POST("/:id/start", h.startTimer)
		timers.POST("/:id/pause", h.pauseTimer)
		timers.POST("/:id/resume", h.resumeTimer)
		timers.POST("/:id/reset", h.resetTimer)
		timers.PUT("/:id/duration", h.setTimerDuration)
	}
}

// RegisterSystemRoutes регистрирует маршруты, не требующие API-ключа
func (h *Handler) RegisterSystemRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)
}
