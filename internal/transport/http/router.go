package reporthttp

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cognia/internal/app"
)

type router struct {
	service *app.App
}

func newRouter(service *app.App) *router {
	return &router{service: service}
}

func (r *router) register(e *gin.Engine) {
	api := e.Group("/api")
	api.GET("/runs", r.listRuns)
	api.GET("/runs/:id", r.getRun)
	api.POST("/analyze", r.analyze)
	e.GET("/reports/:id", r.serveReport)
}

func (r *router) listRuns(c *gin.Context) {
	runs := r.service.Runs()
	if runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history disabled"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := runs.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": items, "count": len(items)})
}

func (r *router) getRun(c *gin.Context) {
	runs := r.service.Runs()
	if runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history disabled"})
		return
	}
	run, err := runs.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

type analyzeRequest struct {
	Path                string `json:"path" binding:"required"`
	Output              string `json:"output"`
	Profile             string `json:"profile"`
	ShowFullCorrelation bool   `json:"show_full_correlation"`
}

func (r *router) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := r.service.Analyze(c.Request.Context(), app.AnalyzeRequest{
		Input:               req.Path,
		Output:              req.Output,
		Profile:             req.Profile,
		ShowFullCorrelation: req.ShowFullCorrelation,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id": result.RunID,
		"output": result.OutputPath,
		"rows":   result.Rows,
		"cols":   result.Columns,
		"alerts": result.Alerts,
	})
}

func (r *router) serveReport(c *gin.Context) {
	runs := r.service.Runs()
	if runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history disabled"})
		return
	}
	run, err := runs.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if run.OutputPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "run has no report"})
		return
	}
	if _, err := os.Stat(run.OutputPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report file missing"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.File(run.OutputPath)
}
