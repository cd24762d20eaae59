// Package server exposes the trip evaluator over HTTP.
package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"route-evaluator/entities"
	"route-evaluator/logger"
	"route-evaluator/report"
	"route-evaluator/trip"
	"route-evaluator/utils"
)

// Server holds the read-only state shared by every request.
type Server struct {
	table       entities.LocationTable
	params      trip.Params
	radiusMiles float64
	log         *logger.Logger
	notifier    *utils.Notifier
}

func New(table entities.LocationTable, params trip.Params, radiusMiles float64, log *logger.Logger, notifier *utils.Notifier) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if radiusMiles <= 0 {
		radiusMiles = trip.DefaultRadiusMiles
	}
	return &Server{table: table, params: params, radiusMiles: radiusMiles, log: log, notifier: notifier}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, s *Server) {
	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/evaluate", s.evaluate)
		v1.GET("/reach/:id", s.reach)
	}
}

// NewRouter returns a gin engine with recovery, request logging and all routes.
func NewRouter(s *Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	RegisterRoutes(router, s)
	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "locations": len(s.table)})
}

func (s *Server) evaluate(c *gin.Context) {
	requestID := uuid.New().String()
	log := s.log.WithField("request_id", requestID)

	var req entities.EvaluateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error(), "request_id": requestID})
		return
	}
	pickup := strings.TrimSpace(req.Pickup)
	dropoff := strings.TrimSpace(req.Dropoff)

	res, err := trip.Evaluate(s.table, s.params, pickup, dropoff, req.Payout)
	if err != nil {
		if errors.Is(err, trip.ErrLocationNotFound) {
			log.Warn("evaluation rejected", "pickup", pickup, "dropoff", dropoff, "error", err)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "request_id": requestID})
			return
		}
		log.Error(err, "evaluation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed", "request_id": requestID})
		return
	}

	log.Info("route evaluated",
		"pickup", pickup,
		"dropoff", dropoff,
		"payout", res.Payout,
		"cost_to_complete", res.TotalCostToComplete,
		"net_gain", res.NetGain,
		"accepted", res.Accepted)

	c.JSON(http.StatusOK, entities.EvaluateOutput{
		RequestID: requestID,
		Verdict:   report.Verdict(res),
		Summary:   report.Summary(res),
		Result:    report.Rounded(res),
	})

	if res.Accepted && s.notifier.Enabled() {
		go func(msg utils.Message) {
			if err := s.notifier.SendNotification(msg); err != nil {
				log.Error(err, "verdict notification failed")
			}
		}(utils.FormatVerdictNotification(res))
	}
}

func (s *Server) reach(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	radius := s.radiusMiles
	if raw := c.Query("radius"); raw != "" {
		v, ok := parseMiles(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be a non-negative number"})
			return
		}
		radius = v
	}

	dist, err := trip.DistanceFromHome(s.table, s.params, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "location " + id + " has no usable coordinate"})
		return
	}
	within, err := trip.WithinRadius(s.table, s.params, id, radius)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	out := entities.ReachOutput{
		ID:               id,
		HomeBase:         s.params.HomeBase,
		DistanceFromHome: report.Round2(dist),
		RadiusMiles:      radius,
		WithinRadius:     within,
	}

	if raw := c.Query("hours_left"); raw != "" {
		hours, ok := parseMiles(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours_left must be a non-negative number"})
			return
		}
		canReturn, err := trip.CanReturnHome(s.table, s.params, id, hours)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		out.HoursLeft = &hours
		out.CanReturnHome = &canReturn
	}

	c.JSON(http.StatusOK, out)
}

// parseMiles accepts finite, non-negative numbers only.
func parseMiles(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
