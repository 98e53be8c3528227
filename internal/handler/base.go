package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/estate-listings/internal/middleware"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is embedded by every resource handler and gives it the
// application container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. Req is a pointer to a request struct;
// it arrives bound and validated.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint without a response body.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the response kind in logs.
	GetOperation() string

	// AddAttributes tags the transaction once the result is known.
	AddAttributes(txn *newrelic.Transaction, result any)
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string { return "handler" }

func (h JSONResponseHandler) AddAttributes(*newrelic.Transaction, any) {}

type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, _ any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string { return "handler_no_content" }

func (h NoContentResponseHandler) AddAttributes(*newrelic.Transaction, any) {}

// FileResponseHandler writes a []byte result. With a filename the response
// is a download; without one it renders inline.
type FileResponseHandler struct {
	status      int
	filename    string
	contentType string
}

func (h FileResponseHandler) Handle(c echo.Context, result any) error {
	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "no-cache")
	if h.filename != "" {
		header.Set(echo.HeaderContentDisposition, "attachment; filename="+h.filename)
	}

	data, _ := result.([]byte)
	return c.Blob(h.status, h.contentType, data)
}

func (h FileResponseHandler) GetOperation() string { return "handler_file" }

func (h FileResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	txn.AddAttribute("file.content_type", h.contentType)
	if h.filename != "" {
		txn.AddAttribute("file.name", h.filename)
	}
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("file.size_bytes", len(data))
	}
}

// newRequest allocates a zero request of the template's type. Each call
// binds into its own value; the template is shared by every request on the
// route.
func newRequest[Req validation.Validatable](template Req) Req {
	t := reflect.TypeOf(template)
	if t.Kind() != reflect.Pointer {
		return template
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// requestTrace carries what one request reports to logs and New Relic.
type requestTrace struct {
	txn    *newrelic.Transaction
	logger zerolog.Logger
	start  time.Time
}

func newRequestTrace(c echo.Context, responder ResponseHandler) *requestTrace {
	builder := middleware.GetLogger(c).With().
		Str("operation", responder.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", c.Path())

	if file, ok := responder.(FileResponseHandler); ok {
		builder = builder.Str("content_type", file.contentType)
	}

	t := &requestTrace{
		txn:    newrelic.FromContext(c.Request().Context()),
		logger: builder.Logger(),
		start:  time.Now(),
	}
	t.attr("handler.name", c.Path())
	return t
}

func (t *requestTrace) attr(key string, value any) {
	if t.txn != nil {
		t.txn.AddAttribute(key, value)
	}
}

// phase records the outcome and duration of one pipeline step.
func (t *requestTrace) phase(name string, began time.Time, err error) time.Duration {
	elapsed := time.Since(began)

	status := "success"
	if err != nil {
		status = "failed"
		if t.txn != nil {
			t.txn.NoticeError(nrpkgerrors.Wrap(err))
		}
	}

	t.attr(name+".status", status)
	t.attr(name+".duration_ms", elapsed.Milliseconds())
	return elapsed
}

// handleRequest binds and validates req, runs the endpoint and writes the
// result. Validation failures log at Warn, endpoint failures at Error; the
// error itself is left to the global error handler.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	endpoint func(c echo.Context, req Req) (any, error),
	responder ResponseHandler,
) error {
	trace := newRequestTrace(c, responder)
	trace.logger.Debug().Msg("handling request")

	began := time.Now()
	err := validation.BindAndValidate(c, req)
	validationTook := trace.phase("validation", began, err)
	if err != nil {
		trace.logger.Warn().
			Err(err).
			Dur("validation_duration", validationTook).
			Msg("request validation failed")
		return err
	}

	began = time.Now()
	result, err := endpoint(c, req)
	handlerTook := trace.phase("handler", began, err)
	trace.attr("total.duration_ms", time.Since(trace.start).Milliseconds())

	if err != nil {
		trace.logger.Error().
			Err(err).
			Dur("handler_duration", handlerTook).
			Dur("total_duration", time.Since(trace.start)).
			Msg("handler execution failed")
		return err
	}

	if trace.txn != nil {
		responder.AddAttributes(trace.txn, result)
	}

	trace.logger.Info().
		Dur("validation_duration", validationTook).
		Dur("handler_duration", handlerTook).
		Dur("total_duration", time.Since(trace.start)).
		Msg("request completed successfully")

	return responder.Handle(c, result)
}

// Handle adapts a typed endpoint to echo and writes its result as JSON.
//
//	properties.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated, &handler.CreatePropertyRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	endpoint HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	responder := JSONResponseHandler{status: status}
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return endpoint(c, req)
		}, responder)
	}
}

// HandleFile is Handle for endpoints that return raw bytes. An empty
// filename serves them inline.
func HandleFile[Req validation.Validatable](
	h Handler,
	endpoint HandlerFunc[Req, []byte],
	status int,
	req Req,
	filename string,
	contentType string,
) echo.HandlerFunc {
	responder := FileResponseHandler{status: status, filename: filename, contentType: contentType}
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return endpoint(c, req)
		}, responder)
	}
}

// HandleNoContent is Handle for endpoints without a body, such as a 204
// after DELETE.
func HandleNoContent[Req validation.Validatable](
	h Handler,
	endpoint HandlerFuncNoContent[Req],
	status int,
	req Req,
) echo.HandlerFunc {
	responder := NoContentResponseHandler{status: status}
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return nil, endpoint(c, req)
		}, responder)
	}
}
