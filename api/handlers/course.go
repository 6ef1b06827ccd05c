package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// CourseHandler exposes the course service over HTTP.
type CourseHandler struct {
	service courseservice.Service
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(service courseservice.Service, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{service: service, logger: logger}
}

// Routes returns the course sub-router.
func (h *CourseHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/suggestions", h.Suggestions)
	r.Post("/", h.Save)
	r.Get("/{courseID}", h.Get)
	r.Delete("/{courseID}", h.Delete)
	return r
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		writeCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		writeCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.SearchCourses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.Suggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Save(w http.ResponseWriter, r *http.Request) {
	var course gamedomain.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.SaveCustomCourse(r.Context(), course)
	if err != nil {
		writeCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomCourse(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		writeCourseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeCourseError maps course service errors onto HTTP status codes.
func writeCourseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, courseservice.ErrCourseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, courseservice.ErrInvalidCourse):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, courseservice.ErrBuiltinCourse):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
