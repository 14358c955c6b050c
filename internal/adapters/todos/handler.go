// Package todos provides HTTP access to the todo store.
package todos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"todocore/internal/core"
	"todocore/pkg/domain"
)

// Wire messages fixed for interop with existing clients.
const (
	notFoundMessage      = "Todo not found"
	deletedMessage       = "Todo deleted successfully"
	welcomeMessage       = "Welcome to your todocore Todo App!"
	unprocessableMessage = "unprocessable payload"
)

// Handler translates HTTP verbs, paths and bodies into service calls and
// service outcomes back into status codes and bodies. Payload validation
// happens here; malformed input never reaches the store.
type Handler struct {
	Service *core.Service
}

// NewHandler constructs a todo HTTP handler.
func NewHandler(svc *core.Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		writeError(w, http.StatusInternalServerError, "todo service not configured")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "":
		h.handleRoot(w, r)
	case path == "/todos":
		h.handleCollection(w, r)
	case strings.HasPrefix(path, "/todos/"):
		h.handleItem(w, r, strings.TrimPrefix(path, "/todos/"))
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": welcomeMessage})
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		todos, err := h.Service.ListTodos(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, todos)
	case http.MethodPost:
		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}
		created, err := h.Service.CreateTodo(r.Context(), input)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleItem(w http.ResponseWriter, r *http.Request, remainder string) {
	if strings.Contains(remainder, "/") {
		http.NotFound(w, r)
		return
	}
	// An unparsable identifier can never name a live todo.
	id, err := strconv.ParseInt(remainder, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}

	switch r.Method {
	case http.MethodGet:
		todo, err := h.Service.GetTodo(r.Context(), id)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	case http.MethodPut:
		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}
		updated, err := h.Service.UpdateTodo(r.Context(), id, input)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := h.Service.DeleteTodo(r.Context(), id); err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": deletedMessage})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type todoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// decodeInput parses and validates a create/update payload. On failure it
// answers 422 and reports false; the store is never invoked.
func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (domain.TodoInput, bool) {
	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, unprocessableMessage)
		return domain.TodoInput{}, false
	}
	if req.Title == nil {
		writeError(w, http.StatusUnprocessableEntity, unprocessableMessage)
		return domain.TodoInput{}, false
	}
	input := domain.TodoInput{Title: *req.Title}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, unprocessableMessage)
		return domain.TodoInput{}, false
	}
	return input, true
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
