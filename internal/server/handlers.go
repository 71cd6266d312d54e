package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hubdispo/hubdispo/internal/account"
	"github.com/hubdispo/hubdispo/internal/views"
)

type shipmentParams struct {
	Search             string `form:"search"`
	Status             string `form:"status"`
	Priority           string `form:"priority"`
	ConsolidationGroup string `form:"consolidation_group"`
	Sort               string `form:"sort"`
	Order              string `form:"order"`
	Offset             int    `form:"offset"`
	Limit              int    `form:"limit"`
}

type groupParams struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

type alertParams struct {
	Type           string `form:"type"`
	Severity       string `form:"severity"`
	Status         string `form:"status"`
	ActionRequired bool   `form:"action_required"`
	Limit          int    `form:"limit"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if s.db != nil {
		if err := s.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "database connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"service":     "hubdispo",
		"version":     "0.1.0",
		"generatedAt": s.dataset.GeneratedAt,
	})
}

func (s *Server) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, views.Dashboard(s.dataset))
}

func (s *Server) listShipments(c *gin.Context) {
	var p shipmentParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, err)
		return
	}

	result, err := views.FilterShipments(s.dataset.Shipments, views.ShipmentQuery{
		Search:             p.Search,
		Status:             p.Status,
		Priority:           p.Priority,
		ConsolidationGroup: p.ConsolidationGroup,
		SortBy:             p.Sort,
		Order:              p.Order,
		Offset:             p.Offset,
		Limit:              p.Limit,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipments": result, "count": len(result)})
}

func (s *Server) getShipment(c *gin.Context) {
	shipment, ok := s.dataset.Shipment(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "shipment not found"})
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (s *Server) listConsolidations(c *gin.Context) {
	var p groupParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, err)
		return
	}

	result, err := views.FilterGroups(s.dataset.Groups, views.GroupQuery{
		Search: p.Search,
		Status: p.Status,
		SortBy: p.Sort,
		Order:  p.Order,
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consolidationGroups": result, "count": len(result)})
}

func (s *Server) getConsolidation(c *gin.Context) {
	group, ok := s.dataset.Group(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "consolidation group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group":       group,
		"loadPercent": views.LoadPercent(group),
	})
}

func (s *Server) listAlerts(c *gin.Context) {
	var p alertParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, err)
		return
	}

	result, err := views.FilterAlerts(s.dataset.Alerts, views.AlertQuery{
		Type:           p.Type,
		Severity:       p.Severity,
		Status:         p.Status,
		ActionRequired: p.ActionRequired,
		Limit:          p.Limit,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": result, "count": len(result)})
}

func (s *Server) register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := s.accounts.Register(c.Request.Context(), req)
	if err != nil {
		s.accountError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.accountError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.accounts.Logout(); err != nil {
		s.accountError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) me(c *gin.Context) {
	profile, err := s.accounts.Current()
	if err != nil {
		s.accountError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) accountError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, account.ErrMissingField), errors.Is(err, account.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
