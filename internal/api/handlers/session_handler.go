// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/arvyah/wellnessapi/internal/api/middleware"
	"github.com/arvyah/wellnessapi/internal/service"
	"github.com/arvyah/wellnessapi/pkg/utils/response"
	"github.com/arvyah/wellnessapi/pkg/utils/zaplogger"
	"github.com/labstack/echo/v4"
)

// SessionHandler is the handler for the session API
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new handler for the session API
func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type createSessionRequest struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	JSONFileURL string   `json:"json_file_url"`
}

type saveDraftRequest struct {
	SessionID   string   `json:"sessionId"`
	Title       *string  `json:"title"`
	Tags        []string `json:"tags"`
	JSONFileURL string   `json:"json_file_url"`
}

type publishSessionRequest struct {
	SessionID string `json:"sessionId"`
}

type deleteSessionResponse struct {
	Msg              string `json:"msg"`
	DeletedSessionID string `json:"deletedSessionId"`
}

// userID reads the authenticated user id set by the BearerAuth middleware
func userID(c echo.Context) string {
	id, _ := c.Get(middleware.UserIDContextKey).(string)
	return id
}

// GetPublicSessions returns all published sessions, no auth required
func (h *SessionHandler) GetPublicSessions(c echo.Context) error {
	sessions, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		zaplogger.Error("list published failed", zaplogger.Fields{"operation": "listPublished", "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while listing sessions: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, sessions)
}

// GetMySessions returns all sessions owned by the caller, any status
func (h *SessionHandler) GetMySessions(c echo.Context) error {
	uid := userID(c)
	sessions, err := h.service.ListOwned(c.Request().Context(), uid)
	if err != nil {
		zaplogger.Error("list owned failed", zaplogger.Fields{"operation": "listOwned", "user_id": uid, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while listing sessions: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, sessions)
}

// GetSessionByID returns one session if owned by the caller
func (h *SessionHandler) GetSessionByID(c echo.Context) error {
	uid := userID(c)
	session, err := h.service.GetOwned(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Session not found")
		}
		zaplogger.Error("get session failed", zaplogger.Fields{"operation": "getOwned", "user_id": uid, "session_id": c.Param("id"), "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while getting session: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, session)
}

// CreateSession creates a new draft session; the body is optional
func (h *SessionHandler) CreateSession(c echo.Context) error {
	uid := userID(c)

	var req createSessionRequest
	// The body is optional; a missing or empty body creates a default draft.
	_ = c.Bind(&req)

	session, err := h.service.Create(c.Request().Context(), uid, service.SessionInput{
		Title:       req.Title,
		Tags:        req.Tags,
		JSONFileURL: req.JSONFileURL,
	})
	if err != nil {
		zaplogger.Error("create session failed", zaplogger.Fields{"operation": "create", "user_id": uid, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while creating session: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusCreated, session)
}

// SaveDraft overwrites a session's fields and forces it back to draft
func (h *SessionHandler) SaveDraft(c echo.Context) error {
	uid := userID(c)

	var req saveDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if req.SessionID == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Session ID is required for saving draft")
	}
	if req.Title == nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`title` is required")
	}

	session, err := h.service.SaveDraft(c.Request().Context(), uid, req.SessionID, service.SessionInput{
		Title:       *req.Title,
		Tags:        req.Tags,
		JSONFileURL: req.JSONFileURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Session not found")
		}
		zaplogger.Error("save draft failed", zaplogger.Fields{"operation": "saveDraft", "user_id": uid, "session_id": req.SessionID, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while saving draft: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, session)
}

// PublishSession publishes a draft; publishing a published session is a no-op
func (h *SessionHandler) PublishSession(c echo.Context) error {
	uid := userID(c)

	var req publishSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if req.SessionID == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Session ID is required")
	}

	session, err := h.service.Publish(c.Request().Context(), uid, req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Session not found")
		}
		if errors.Is(err, service.ErrInvalidArgument) {
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Session must have a proper title before publishing")
		}
		zaplogger.Error("publish failed", zaplogger.Fields{"operation": "publish", "user_id": uid, "session_id": req.SessionID, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while publishing session: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, session)
}

// DeleteSession removes a session permanently
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	uid := userID(c)
	id := c.Param("id")

	err := h.service.Delete(c.Request().Context(), uid, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Session not found")
		}
		zaplogger.Error("delete session failed", zaplogger.Fields{"operation": "delete", "user_id": uid, "session_id": id, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while deleting session: "+err.Error())
	}
	return response.SuccessResponse(c, http.StatusOK, deleteSessionResponse{
		Msg:              "Session deleted successfully",
		DeletedSessionID: id,
	})
}
