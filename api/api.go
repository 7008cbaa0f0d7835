package api

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templates embed.FS

type ApiHandler struct {
	AnalysisService     service.AnalysisService
	DefaultSymbol       string
	DefaultRiskFreeRate float64
	Metrics             *Metrics
	Logger              *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	tmpl := template.Must(template.ParseFS(templates, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", m.dashboard)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "ok"})
	})
	router.POST("/analyze", m.analyze)
	router.GET("/export", m.export)
	if m.Metrics != nil {
		router.GET("/metrics", gin.WrapH(m.Metrics.Handler()))
	}

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(requestContext(c)).Warnw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingSymbol):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownSymbol):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

const requestContextKey = "requestContext"

// requestContext is the context resolvers should pass down: it carries
// the request logger and performance profile.
func requestContext(c *gin.Context) context.Context {
	if v, ok := c.Get(requestContextKey); ok {
		if ctx, ok := v.(context.Context); ok {
			return ctx
		}
	}
	return c.Request.Context()
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	requestID := uuid.New().String()
	c.Set("requestID", requestID)
	c.Header("X-Request-ID", requestID)

	base := m.Logger
	if base == nil {
		base = zap.S()
	}
	log := base.With("requestID", requestID)

	profile := domain.NewPerformanceProfile()
	ctx := logger.WithLogger(c.Request.Context(), log)
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	c.Set(requestContextKey, ctx)

	start := time.Now().UTC()
	c.Next()
	duration := time.Since(start)

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	if m.Metrics != nil {
		m.Metrics.ObserveRequest(c.Request.Method, route, status, duration)
	}

	fields := []interface{}{
		"method", c.Request.Method,
		"route", route,
		"status", status,
		"durationMs", duration.Milliseconds(),
		"ip", c.ClientIP(),
	}
	if status >= 400 {
		fields = append(fields, "responseBody", w.body.String())
	}
	log.Infow("handled request", fields...)
}
