package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	notificationdispatcher "archivum/contexts/engagement/notification-dispatcher"
	contentworkflow "archivum/contexts/publishing/content-workflow"
	workflowerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	workflowhttp "archivum/contexts/publishing/content-workflow/transport/http"
	editsuggestions "archivum/contexts/publishing/edit-suggestions"
	"archivum/internal/platform/metrics"
	"archivum/internal/shared/events"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "archivum/internal/platform/httpserver/docs"
)

const moderatorRole = "moderator"

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	workflow    contentworkflow.Module
	suggestions editsuggestions.Module
	notifier    notificationdispatcher.Module
	metrics     *metrics.Metrics
}

func New(
	workflow contentworkflow.Module,
	suggestions editsuggestions.Module,
	notifier notificationdispatcher.Module,
	workflowMetrics *metrics.Metrics,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		workflow:    workflow,
		suggestions: suggestions,
		notifier:    notifier,
		metrics:     workflowMetrics,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.HandleFunc("POST /v1/content", s.timed("create_draft", s.handleCreateDraft))
	s.mux.HandleFunc("GET /v1/content", s.timed("list_content", s.handleListByAuthor))
	s.mux.HandleFunc("GET /v1/content/{item_id}", s.timed("get_content", s.handleGetContentItem))
	s.mux.HandleFunc("PUT /v1/content/{item_id}", s.timed("save_draft", s.handleSaveDraft))
	s.mux.HandleFunc("POST /v1/content/{item_id}/submit", s.timed("submit", s.handleSubmit))
	s.mux.HandleFunc("POST /v1/content/{item_id}/approve", s.timed("approve", s.handleApprove))
	s.mux.HandleFunc("POST /v1/content/{item_id}/reject", s.timed("reject", s.handleReject))
	s.mux.HandleFunc("GET /v1/moderation/queue", s.timed("moderation_queue", s.handleModerationQueue))

	s.registerSuggestionRoutes()
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req workflowhttp.CreateDraftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.workflow.Handler.CreateDraftHandler(r.Context(), userID, req)
	if err != nil {
		s.observe("create_draft", "error")
		s.writeWorkflowError(w, err)
		return
	}
	s.observe("create_draft", "ok")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req workflowhttp.SaveDraftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.workflow.Handler.SaveDraftHandler(r.Context(), userID, r.PathValue("item_id"), req)
	if err != nil {
		s.observe("save_draft", "error")
		s.writeWorkflowError(w, err)
		return
	}
	s.observe("save_draft", "ok")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.workflow.Handler.SubmitHandler(r.Context(), userID, r.PathValue("item_id"))
	if err != nil {
		s.observe("submit", "error")
		s.writeWorkflowError(w, err)
		return
	}
	s.observe("submit", "ok")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := s.requireModerator(w, r)
	if !ok {
		return
	}
	resp, emitted, err := s.workflow.Handler.ApproveHandler(r.Context(), moderatorID, r.PathValue("item_id"))
	if err != nil {
		s.observe("approve", "error")
		s.writeWorkflowError(w, err)
		return
	}
	s.observe("approve", "ok")
	s.dispatch(r, emitted)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := s.requireModerator(w, r)
	if !ok {
		return
	}
	var req workflowhttp.RejectContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, emitted, err := s.workflow.Handler.RejectHandler(r.Context(), moderatorID, r.PathValue("item_id"), req)
	if err != nil {
		s.observe("reject", "error")
		s.writeWorkflowError(w, err)
		return
	}
	s.observe("reject", "ok")
	s.dispatch(r, emitted)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetContentItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.workflow.Handler.GetContentItemHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListByAuthor(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	authorID := query.Get("author_id")
	if authorID == "" {
		var ok bool
		authorID, ok = s.requireUser(w, r)
		if !ok {
			return
		}
	}
	resp, err := s.workflow.Handler.ListByAuthorHandler(r.Context(), authorID, query.Get("state"))
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleModerationQueue(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModerator(w, r); !ok {
		return
	}
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = value
	}
	offset := 0
	if raw := query.Get("offset"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_offset", "offset must be an integer")
			return
		}
		offset = value
	}

	resp, err := s.workflow.Handler.ModerationQueueHandler(r.Context(), query.Get("kind"), limit, offset)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// dispatch hands emitted notifications to the channel after the transition
// response is already decided; failures are absorbed by the dispatcher.
func (s *Server) dispatch(r *http.Request, emitted []events.Notification) {
	if len(emitted) == 0 {
		return
	}
	s.notifier.Dispatcher.Dispatch(r.Context(), emitted...)
	for _, notification := range emitted {
		s.metrics.ObserveNotification(string(notification.Kind))
	}
}

func (s *Server) observe(action, outcome string) {
	s.metrics.ObserveTransition(action, outcome)
}

func (s *Server) timed(route string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		s.metrics.ObserveDuration(route, time.Since(start))
	}
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

// requireModerator trusts the identity provider's role header; the core does
// not implement authentication.
func (s *Server) requireModerator(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return "", false
	}
	if r.Header.Get("X-User-Role") != moderatorRole {
		writeError(w, http.StatusForbidden, "moderator_required", "moderator role is required")
		return "", false
	}
	return userID, true
}

func (s *Server) writeWorkflowError(w http.ResponseWriter, err error) {
	var validation *workflowerrors.ValidationError
	if errors.As(err, &validation) {
		fields := make([]workflowhttp.FieldDetail, 0, len(validation.Fields))
		for _, field := range validation.Fields {
			fields = append(fields, workflowhttp.FieldDetail{
				Field:  field.Field,
				Reason: field.Reason,
			})
		}
		writeJSON(w, http.StatusUnprocessableEntity, workflowhttp.ErrorResponse{
			Code:    "validation_failed",
			Message: workflowerrors.ErrValidationFailed.Error(),
			Fields:  fields,
		})
		return
	}

	switch {
	case errors.Is(err, workflowerrors.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, workflowerrors.ErrInvalidState):
		writeError(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, workflowerrors.ErrInvalidContentKind),
		errors.Is(err, workflowerrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		s.logger.Error("unhandled workflow error",
			"event", "http_workflow_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, workflowhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
