package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"rentaid/internal/app"
	"rentaid/internal/common"
	"rentaid/internal/domain/application"
	"rentaid/internal/http/response"
	"rentaid/internal/upload"
)

type AdminHandler struct {
	admin   *app.AdminService
	uploads *upload.Store
}

func NewAdminHandler(admin *app.AdminService, uploads *upload.Store) *AdminHandler {
	return &AdminHandler{admin: admin, uploads: uploads}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Application{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	record, err := h.admin.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *AdminHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Application{}
	}
	response.JSON(w, http.StatusOK, items)
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.admin.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Application deleted"})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// ServeUpload serves a stored license image verbatim. Unauthenticated, like
// the rest of the static surface.
func (h *AdminHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/uploads/")
	path, err := h.uploads.Path(name)
	if err != nil {
		response.Error(w, err)
		return
	}
	http.ServeFile(w, r, path)
}

func idFromPath(r *http.Request) (int64, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	raw := parts[len(parts)-1]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, common.NewValidationError("invalid application id", map[string]string{"id": "must be a non-negative integer"})
	}
	return id, nil
}
