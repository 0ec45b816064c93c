package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/config"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/scoring"
	"github.com/shenikar/enviro_health_system/internal/service"
	"github.com/shenikar/enviro_health_system/internal/timer"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	assessmentService service.AssessmentService
	profileService    service.ProfileService
	timerService      service.TimerService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(assessmentService service.AssessmentService, profileService service.ProfileService, timerService service.TimerService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		assessmentService: assessmentService,
		profileService:    profileService,
		timerService:      timerService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondServiceError переводит ошибки сервисного слоя в HTTP-статусы
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
	case errors.Is(err, service.ErrNoProfile):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, service.ErrTimerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "timer session not found"})
	case errors.Is(err, timer.ErrRunning):
		c.JSON(http.StatusConflict, gin.H{"error": "timer is running"})
	case errors.Is(err, scoring.ErrInvalidEnum):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary List cities
// @Description Get the static city catalog, optionally filtered by state and AQI ceiling. Requires API key.
// @Tags Cities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state query string false "Filter by state name"
// @Param max_aqi query int false "Keep only cities with AQI not above this value"
// @Success 200 {array} CityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cities [get]
func (h *Handler) listCities(c *gin.Context) {
	state := c.Query("state")
	maxAQI, _ := strconv.Atoi(c.DefaultQuery("max_aqi", "0"))

	cities := h.assessmentService.ListCities(c.Request.Context(), state, maxAQI)
	c.JSON(http.StatusOK, ModelsToCityResponses(cities))
}

// @Summary Get city by ID
// @Description Get one city from the static catalog. Requires API key.
// @Tags Cities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "City ID"
// @Success 200 {object} CityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "City not found"
// @Router /cities/{id} [get]
func (h *Handler) getCity(c *gin.Context) {
	log := h.logger.WithField("method", "getCity")

	city, err := h.assessmentService.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCityResponse(city))
}

// @Summary Get city risk assessment
// @Description Get the computed risk score, AQI band and water score for a city. Requires API key.
// @Tags Cities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "City ID"
// @Success 200 {object} CityRiskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities/{id}/risk [get]
func (h *Handler) getCityRisk(c *gin.Context) {
	log := h.logger.WithField("method", "getCityRisk")

	report, err := h.assessmentService.CityRisk(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCityRiskResponse(report))
}

// @Summary List health risks
// @Description Get the disease catalog with optional exposure, severity and name filters. Requires API key.
// @Tags Risks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param exposure_type query string false "Exposure filter: air, water or both"
// @Param severity query string false "Severity filter: Mild, Moderate, Severe or Critical"
// @Param search query string false "Substring match on disease name"
// @Success 200 {array} HealthRiskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /risks [get]
func (h *Handler) listHealthRisks(c *gin.Context) {
	filter := service.RiskFilter{
		Exposure: models.ExposureFilter(c.Query("exposure_type")),
		Severity: models.Severity(c.Query("severity")),
		Search:   c.Query("search"),
	}
	risks := h.assessmentService.ListHealthRisks(c.Request.Context(), filter)
	c.JSON(http.StatusOK, ModelsToHealthRiskResponses(risks))
}

// @Summary Get dataset statistics
// @Description Get summary counters over the static catalogs. Requires API key.
// @Tags Risks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.assessmentService.Stats(c.Request.Context())
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Find nearest city
// @Description Match coordinates to the nearest catalog city within 100 km. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body NearestCityRequest true "Coordinates"
// @Success 200 {object} NearestCityResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/nearest [post]
func (h *Handler) nearestCity(c *gin.Context) {
	var input NearestCityRequest
	log := h.logger.WithField("method", "nearestCity")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match := h.assessmentService.NearestCity(c.Request.Context(), input.Latitude, input.Longitude)
	c.JSON(http.StatusOK, MatchToNearestCityResponse(match))
}

// @Summary Detect location
// @Description Match the client to a catalog city. Without coordinates in the body the service falls back to a one-shot IP geolocation lookup. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body DetectLocationRequest true "Optional coordinates"
// @Success 200 {object} DetectLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "GeoIP lookup failed"
// @Router /location/detect [post]
func (h *Handler) detectLocation(c *gin.Context) {
	var input DetectLocationRequest
	log := h.logger.WithField("method", "detectLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detection, err := h.assessmentService.DetectLocation(c.Request.Context(), input.Latitude, input.Longitude, c.ClientIP())
	if err != nil {
		// Отказ GeoIP не фатален: клиенту предлагается выбрать город вручную
		log.WithError(err).Warn("Location detection failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not detect location, please select a city manually"})
		return
	}

	c.JSON(http.StatusOK, DetectLocationResponse{
		Latitude:  detection.Latitude,
		Longitude: detection.Longitude,
		Source:    detection.Source,
		Nearest:   MatchToNearestCityResponse(detection.Match),
	})
}

// @Summary Predict risk timeline
// @Description Compute the ordered risk timeline for a city, health profile and exposure type. Requires API key.
// @Tags Assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PredictionsRequest true "Prediction request"
// @Success 200 {array} RiskPredictionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assessment/predictions [post]
func (h *Handler) predictTimeline(c *gin.Context) {
	var input PredictionsRequest
	log := h.logger.WithField("method", "predictTimeline")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	predictions, err := h.assessmentService.PredictTimeline(
		c.Request.Context(),
		input.CityID,
		models.HealthProfile(input.HealthProfile),
		models.ExposureFilter(input.ExposureType),
	)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToPredictionResponses(predictions))
}

// @Summary Submit vulnerability questionnaire
// @Description Score the five-question vulnerability questionnaire and overwrite the stored profile. Requires API key.
// @Tags Assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body QuestionnaireRequest true "Questionnaire answers"
// @Success 200 {object} QuestionnaireResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assessment/questionnaire [post]
func (h *Handler) submitQuestionnaire(c *gin.Context) {
	var input QuestionnaireRequest
	log := h.logger.WithField("method", "submitQuestionnaire")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := scoring.QuestionnaireAnswers{
		AgeGroup:         models.AgeGroup(input.AgeGroup),
		HealthCondition:  models.HealthCondition(input.HealthCondition),
		Pregnancy:        models.PregnancyStatus(input.PregnancyStatus),
		Smoking:          models.SmokingStatus(input.SmokingStatus),
		LocationExposure: input.LocationExposure,
	}
	report, err := h.profileService.SubmitQuestionnaire(c.Request.Context(), input.UserID, answers)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReportToQuestionnaireResponse(report))
}

// @Summary Get stored profile
// @Description Get the user profile created by the questionnaire. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Reset profile
// @Description Remove the stored profile and the whole exposure history. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [delete]
func (h *Handler) resetProfile(c *gin.Context) {
	log := h.logger.WithField("method", "resetProfile")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.profileService.Reset(c.Request.Context(), userID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get exposure history
// @Description Get the append-only exposure activity log. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Success 200 {array} ExposureResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /history [get]
func (h *Handler) getHistory(c *gin.Context) {
	log := h.logger.WithField("method", "getHistory")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	history, err := h.profileService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToExposureResponses(history))
}

// @Summary Record exposure activity
// @Description Append one exposure activity to the history. Requires API key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ExposureRequest true "Exposure activity"
// @Success 201 {object} ExposureResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /history [post]
func (h *Handler) addExposure(c *gin.Context) {
	var input ExposureRequest
	log := h.logger.WithField("method", "addExposure")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := &models.ExposureActivity{
		Location:     input.Location,
		ExposureType: models.ExposureFilter(input.ExposureType),
		Duration:     input.DurationHours,
		AQI:          input.AQI,
		Symptoms:     input.Symptoms,
		Notes:        input.Notes,
	}
	if err := h.profileService.AddExposure(c.Request.Context(), input.UserID, activity); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	responses := ModelsToExposureResponses([]models.ExposureActivity{*activity})
	c.JSON(http.StatusCreated, responses[0])
}

// @Summary Create timer session
// @Description Create an idle exposure countdown session. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateTimerRequest true "Timer session request"
// @Success 201 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /timers [post]
func (h *Handler) createTimer(c *gin.Context) {
	var input CreateTimerRequest
	log := h.logger.WithField("method", "createTimer")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration := time.Duration(input.DurationHours * float64(time.Hour))
	id, state, err := h.timerService.Create(c.Request.Context(), input.UserID, duration)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, StateToTimerResponse(id, state))
}

// timerAction выполняет операцию над сессией таймера по ее ID
func (h *Handler) timerAction(c *gin.Context, method string, op func(id uuid.UUID) (timer.State, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timer ID"})
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	state, err := op(id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StateToTimerResponse(id, state))
}

// @Summary Get timer session
// @Description Get the current countdown snapshot. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Router /timers/{id} [get]
func (h *Handler) getTimer(c *gin.Context) {
	h.timerAction(c, "getTimer", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.Get(c.Request.Context(), id)
	})
}

// @Summary Start timer
// @Description Start the countdown, preserving already accumulated exposure time. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Router /timers/{id}/start [post]
func (h *Handler) startTimer(c *gin.Context) {
	h.timerAction(c, "startTimer", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.Start(c.Request.Context(), id)
	})
}

// @Summary Pause timer
// @Description Freeze the accumulated exposure time. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Router /timers/{id}/pause [post]
func (h *Handler) pauseTimer(c *gin.Context) {
	h.timerAction(c, "pauseTimer", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.Pause(c.Request.Context(), id)
	})
}

// @Summary Resume timer
// @Description Resume the countdown after a pause. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Router /timers/{id}/resume [post]
func (h *Handler) resumeTimer(c *gin.Context) {
	h.timerAction(c, "resumeTimer", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.Start(c.Request.Context(), id)
	})
}

// @Summary Reset timer
// @Description Return the session to idle and clear the alert condition. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Router /timers/{id}/reset [post]
func (h *Handler) resetTimer(c *gin.Context) {
	h.timerAction(c, "resetTimer", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.Reset(c.Request.Context(), id)
	})
}

// @Summary Change timer duration
// @Description Change the countdown duration. Rejected with 409 while the timer is running. Requires API key.
// @Tags Timers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Timer session ID"
// @Param request body TimerDurationRequest true "New duration"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} map[string]string "Invalid timer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Timer session not found"
// @Failure 409 {object} map[string]string "Timer is running"
// @Router /timers/{id}/duration [put]
func (h *Handler) setTimerDuration(c *gin.Context) {
	var input TimerDurationRequest
	log := h.logger.WithField("method", "setTimerDuration")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration := time.Duration(input.DurationHours * float64(time.Hour))
	h.timerAction(c, "setTimerDuration", func(id uuid.UUID) (timer.State, error) {
		return h.timerService.SetDuration(c.Request.Context(), id, duration)
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
