package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	resTypes "github.com/sllt/fql/pkg/fql/http/response"
	"github.com/sllt/fql/pkg/fql/logging"
	"github.com/sllt/fql/pkg/fql/qb"
)

const (
	renderCounter = "fql_render_total"

	statusOK    = "ok"
	statusError = "error"
)

var (
	errEmptyBody   = errors.New("request body is empty")
	errSelectShape = errors.New("select must be a string or a list of strings")
)

// handler adapts a function returning (data, error) to http.Handler through the Responder.
type handler func(r *http.Request) (any, error)

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := h(r)

	NewResponder(w, r.Method).Respond(data, err)
}

type counter interface {
	IncrementCounter(ctx context.Context, name string, labels ...string)
}

// Service exposes a query builder over HTTP.
type Service struct {
	builder *qb.Builder
	logger  logging.Logger
	metrics counter
}

// NewService returns a Service rendering queries with builder.
func NewService(builder *qb.Builder, logger logging.Logger, metrics counter) *Service {
	return &Service{builder: builder, logger: logger, metrics: metrics}
}

type renderRequest struct {
	Select columnList `json:"select"`
	From   string     `json:"from" binding:"required"`
	Where  []string   `json:"where" binding:"omitempty,dive,required"`
	Sort   []sortSpec `json:"sort" binding:"omitempty,dive"`
	Limit  *limitSpec `json:"limit"`
}

type sortSpec struct {
	Field     string `json:"field" binding:"required"`
	Direction string `json:"direction" binding:"omitempty,oneof=ASC DESC asc desc"`
}

type limitSpec struct {
	Page   int `json:"page" binding:"min=0"`
	Length int `json:"length" binding:"min=1"`
}

type renderResponse struct {
	Query string `json:"query"`
}

// columnList accepts either a single string or a list of strings.
type columnList []string

func (c *columnList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*c = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*c = columnList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errSelectShape
	}

	*c = many

	return nil
}

func (req *renderRequest) query(b *qb.Builder) *qb.Query {
	q := b.Select()
	if len(req.Select) > 0 {
		q.Select([]string(req.Select))
	}

	q.From(req.From)

	if len(req.Where) > 0 {
		q.Where(req.Where)
	}

	for _, s := range req.Sort {
		if s.Direction == "" {
			q.SortBy(s.Field)
			continue
		}

		q.SortBy(s.Field, strings.ToUpper(s.Direction))
	}

	if req.Limit != nil {
		q.Limit(req.Limit.Page, req.Limit.Length)
	}

	return q
}

// Render handles POST /render.
func (s *Service) Render(r *http.Request) (any, error) {
	var req renderRequest

	if err := bind(r, &req); err != nil {
		return nil, err
	}

	start := time.Now()
	query, err := req.query(s.builder).Render()

	entry := &qb.Log{
		Type:     "render",
		Table:    req.From,
		Query:    query,
		Duration: time.Since(start).Microseconds(),
	}

	log := logging.NewContextLogger(r.Context(), s.logger)

	if err != nil {
		entry.Error = err.Error()
		log.Debug(entry)
		s.metrics.IncrementCounter(r.Context(), renderCounter, "table", req.From, "status", statusError)

		return nil, mapBuilderError(req.From, err)
	}

	log.Debug(entry)
	s.metrics.IncrementCounter(r.Context(), renderCounter, "table", req.From, "status", statusOK)

	return renderResponse{Query: query}, nil
}

// Tables handles GET /tables.
func (s *Service) Tables(*http.Request) (any, error) {
	tables := s.builder.Registry().Tables()

	return resTypes.Response{
		Data: tables,
		Meta: map[string]any{"count": len(tables)},
	}, nil
}

// Columns handles GET /tables/{table}.
func (s *Service) Columns(r *http.Request) (any, error) {
	table := chi.URLParam(r, "table")

	columns, ok := s.builder.Registry().Columns(table)
	if !ok {
		return nil, ErrorTableNotFound{Table: table}
	}

	return columns, nil
}

func bind(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)

	switch {
	case errors.Is(err, io.EOF):
		return ErrorInvalidBody{Err: errEmptyBody}
	case err != nil:
		return ErrorInvalidBody{Err: err}
	}

	return validateStruct(v)
}
