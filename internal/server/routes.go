package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
)

func (s *Server) registerRoutes() {
	e := s.echo
	e.GET("/health", s.handleHealth)
	e.POST("/generate", s.handleGenerate)

	e.GET("/profiles/:id", s.handleGetProfile)
	e.PUT("/profiles/:id", s.handlePutProfile)
	e.DELETE("/profiles/:id", s.handleDeleteProfile)

	e.GET("/plans/:id", s.handleGetPlan)
	e.GET("/plans/:id/events", s.handlePlanEvents)
	e.GET("/users/:id/plans", s.handleListPlans)
}

func (s *Server) handleHealth(c echo.Context) error {
	model := "disabled"
	if s.services.Model != nil {
		model = "unreachable"
		if s.services.Model.Available(c.Request().Context()) {
			model = "reachable"
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "model": model})
}

func (s *Server) handleGenerate(c echo.Context) error {
	var req contract.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	res, err := s.services.Generation.Generate(c.Request().Context(), requestID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	p, err := s.services.Profiles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handlePutProfile(c echo.Context) error {
	var p domain.UserProfile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	p.ID = c.Param("id")
	if err := s.services.Profiles.Upsert(c.Request().Context(), &p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProfile(c echo.Context) error {
	if err := s.services.Profiles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetPlan(c echo.Context) error {
	rec, err := s.services.History.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handlePlanEvents(c echo.Context) error {
	events, err := s.services.History.Events(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (s *Server) handleListPlans(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}
	recs, err := s.services.History.ListByUser(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []*domain.PlanRecord{}
	}
	return c.JSON(http.StatusOK, recs)
}
