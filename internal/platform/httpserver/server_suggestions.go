package httpserver

import (
	"errors"
	"net/http"

	workflowerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	suggestionerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"
	suggestionhttp "archivum/contexts/publishing/edit-suggestions/transport/http"
)

func (s *Server) registerSuggestionRoutes() {
	s.mux.HandleFunc("POST /v1/content/{item_id}/suggestions", s.timed("propose_edit", s.handleProposeEdit))
	s.mux.HandleFunc("GET /v1/content/{item_id}/suggestions", s.timed("list_suggestions", s.handleListSuggestionsByItem))
	s.mux.HandleFunc("POST /v1/suggestions/{suggestion_id}/approve", s.timed("approve_suggestion", s.handleApproveSuggestion))
	s.mux.HandleFunc("POST /v1/suggestions/{suggestion_id}/reject", s.timed("reject_suggestion", s.handleRejectSuggestion))
	s.mux.HandleFunc("GET /v1/suggestions", s.timed("list_pending_suggestions", s.handleListPendingSuggestions))
}

// handleProposeEdit accepts suggestions from signed-in users and guests alike;
// a missing X-User-Id records the suggestion as anonymous.
func (s *Server) handleProposeEdit(w http.ResponseWriter, r *http.Request) {
	suggesterID := r.Header.Get("X-User-Id")
	var req suggestionhttp.ProposeEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, emitted, err := s.suggestions.Handler.ProposeEditHandler(r.Context(), suggesterID, r.PathValue("item_id"), req)
	if err != nil {
		s.writeSuggestionError(w, err)
		return
	}
	s.dispatch(r, emitted)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, emitted, err := s.suggestions.Handler.ApproveSuggestionHandler(r.Context(), userID, r.PathValue("suggestion_id"))
	if err != nil {
		s.metrics.ObserveDecision("approve", "error")
		s.writeSuggestionError(w, err)
		return
	}
	s.metrics.ObserveDecision("approve", "ok")
	s.dispatch(r, emitted)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req suggestionhttp.RejectSuggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, emitted, err := s.suggestions.Handler.RejectSuggestionHandler(r.Context(), userID, r.PathValue("suggestion_id"), req)
	if err != nil {
		s.metrics.ObserveDecision("reject", "error")
		s.writeSuggestionError(w, err)
		return
	}
	s.metrics.ObserveDecision("reject", "ok")
	s.dispatch(r, emitted)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSuggestionsByItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.suggestions.Handler.ListByItemHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		s.writeSuggestionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPendingSuggestions(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author_id")
	if authorID == "" {
		var ok bool
		authorID, ok = s.requireUser(w, r)
		if !ok {
			return
		}
	}
	resp, err := s.suggestions.Handler.ListPendingForAuthorHandler(r.Context(), authorID)
	if err != nil {
		s.writeSuggestionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeSuggestionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, suggestionerrors.ErrSuggestionNotFound),
		errors.Is(err, workflowerrors.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, suggestionerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, suggestionerrors.ErrInvalidState):
		writeError(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, suggestionerrors.ErrItemNotPublished):
		writeError(w, http.StatusConflict, "item_not_published", err.Error())
	case errors.Is(err, suggestionerrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		s.logger.Error("unhandled suggestion error",
			"event", "http_suggestion_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
