// Package server exposes retrieval, prompt assembly and answering over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"ragdemo/internal/domain"
	"ragdemo/internal/usecase"
)

// Server wires the use cases into an echo router.
type Server struct {
	echo     *echo.Echo
	retrieve *usecase.RetrieveUseCase
	prompts  *usecase.PromptUseCase
	answer   *usecase.AnswerUseCase
	model    string
	logger   *zap.Logger
}

// Deps groups what the server needs.
type Deps struct {
	Retrieve *usecase.RetrieveUseCase
	Prompts  *usecase.PromptUseCase
	Answer   *usecase.AnswerUseCase
	Model    string
	Logger   *zap.Logger
}

type queryRequest struct {
	Query    string `json:"query"`
	Mode     string `json:"mode"`
	MinScore *int   `json:"min_score"`
}

type retrieveResponse struct {
	Query     string                  `json:"query"`
	MinScore  int                     `json:"min_score"`
	Documents []domain.ScoredDocument `json:"documents"`
}

type promptResponse struct {
	Query     string            `json:"query"`
	Mode      usecase.Mode      `json:"mode"`
	Prompt    string            `json:"prompt"`
	Documents []domain.Document `json:"documents"`
}

// New builds the router. Call Start to listen.
func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s := &Server{
		echo:     e,
		retrieve: d.Retrieve,
		prompts:  d.Prompts,
		answer:   d.Answer,
		model:    d.Model,
		logger:   logger,
	}

	e.GET("/health", s.health)
	e.GET("/documents", s.documents)
	e.POST("/retrieve", s.retrieveDocuments)
	e.POST("/prompt", s.buildPrompt)
	e.POST("/answer", s.answerQuery)

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"model":     s.model,
		"documents": s.retrieve.KnowledgeBase().Len(),
	})
}

func (s *Server) documents(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"documents": s.retrieve.KnowledgeBase().Documents(),
	})
}

func (s *Server) retrieveDocuments(c echo.Context) error {
	req, ok, err := bindQuery(c)
	if !ok {
		return err
	}

	minScore := s.retrieve.MinScore()
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	ranked, err := s.retrieve.RankWithMinScore(req.Query, minScore)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, retrieveResponse{
		Query:     req.Query,
		MinScore:  minScore,
		Documents: ranked,
	})
}

func (s *Server) buildPrompt(c echo.Context) error {
	req, ok, err := bindQuery(c)
	if !ok {
		return err
	}

	mode := usecase.ModeRAG
	if req.Mode != "" {
		mode, err = usecase.ParseMode(req.Mode)
		if err != nil {
			return s.fail(c, err)
		}
	}

	resp := promptResponse{Query: req.Query, Mode: mode, Documents: []domain.Document{}}
	switch mode {
	case usecase.ModeNaive:
		resp.Prompt, err = s.prompts.BuildNaive(req.Query)
	case usecase.ModeRAG:
		resp.Documents, err = s.retrieve.Retrieve(req.Query)
		if err == nil {
			resp.Prompt, err = s.prompts.BuildWithContext(req.Query, resp.Documents)
		}
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be naive or rag"})
	}
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) answerQuery(c echo.Context) error {
	req, ok, err := bindQuery(c)
	if !ok {
		return err
	}

	mode, err := usecase.ParseMode(req.Mode)
	if err != nil {
		return s.fail(c, err)
	}

	cmp, err := s.answer.Answer(req.Query, mode)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, cmp)
}

// bindQuery decodes the body and rejects blank queries. When ok is false the
// error response has been written and err is the write result.
func bindQuery(c echo.Context) (req queryRequest, ok bool, err error) {
	if err := c.Bind(&req); err != nil {
		return req, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, false, c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrEmptyQuery.Error()})
	}
	return req, true, nil
}

// fail maps use case errors to HTTP statuses. Anything that is not a caller
// mistake came from the LLM backend.
func (s *Server) fail(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidArgument) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	s.logger.Warn("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
}
