package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// GameHandler exposes the game service over HTTP.
type GameHandler struct {
	service    gameservice.Service
	logger     *slog.Logger
	dateParser *when.Parser
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service gameservice.Service, logger *slog.Logger) *GameHandler {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return &GameHandler{
		service:    service,
		logger:     logger,
		dateParser: parser,
	}
}

// Routes returns the game sub-router.
func (h *GameHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateGame)
	r.Get("/{gameID}", h.GetGame)
	r.Delete("/{gameID}", h.DeleteGame)
	r.Put("/{gameID}/scores", h.RecordScore)
	r.Put("/{gameID}/closest", h.SetClosestToPin)
	r.Put("/{gameID}/longest", h.SetLongestDrive)
	r.Put("/{gameID}/marks", h.SetMark)
	r.Put("/{gameID}/toggles", h.SetHoleToggle)
	r.Put("/{gameID}/course", h.ChangeCourse)
	r.Post("/{gameID}/archive", h.Archive)
	r.Get("/{gameID}/export.xlsx", h.ExportXLSX)
	r.Get("/{gameID}/standings.png", h.StandingsChart)
	return r
}

// CreateGameRequest is the input for starting a game. Date accepts either
// an ISO date or natural language like "next saturday".
type CreateGameRequest struct {
	GameID    string                  `json:"gameId,omitempty"`
	EventName string                  `json:"eventName"`
	Date      string                  `json:"date"`
	CourseID  string                  `json:"courseId"`
	Players   []gamedomain.PlayerSetup `json:"players"`
}

func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	date, err := h.resolveDate(input.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	game, err := h.service.CreateGame(r.Context(), gameservice.CreateGameInput{
		GameID:    input.GameID,
		EventName: input.EventName,
		Date:      date,
		CourseID:  input.CourseID,
		Players:   input.Players,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// resolveDate accepts an ISO date as-is and runs anything else through the
// natural language parser. An empty date defaults to today.
func (h *GameHandler) resolveDate(input string) (string, error) {
	if input == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", input); err == nil {
		return input, nil
	}

	result, err := h.dateParser.Parse(input, time.Now())
	if err != nil || result == nil {
		return "", fmt.Errorf("could not understand date %q", input)
	}
	return result.Time.Format("2006-01-02"), nil
}

func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordScoreRequest carries one player's strokes and putts for one hole.
type RecordScoreRequest struct {
	PlayerID gamedomain.PlayerID `json:"playerId"`
	Hole     int                 `json:"hole"`
	Strokes  int                 `json:"strokes"`
	Putts    int                 `json:"putts"`
}

func (h *GameHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	var input RecordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	game, err := h.service.RecordScore(r.Context(), chi.URLParam(r, "gameID"), input.PlayerID, input.Hole, input.Strokes, input.Putts)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// WinnerRequest adjudicates a closest-to-pin or longest-drive hole. A nil
// winner with clear=false records "no winner"; clear=true reopens the hole.
type WinnerRequest struct {
	Hole   int                  `json:"hole"`
	Winner *gamedomain.PlayerID `json:"winner"`
	Clear  bool                 `json:"clear,omitempty"`
}

func (h *GameHandler) SetClosestToPin(w http.ResponseWriter, r *http.Request) {
	var input WinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	gameID := chi.URLParam(r, "gameID")
	var game *gamedomain.Game
	var err error
	if input.Clear {
		game, err = h.service.ClearClosestToPin(r.Context(), gameID, input.Hole)
	} else {
		game, err = h.service.SetClosestToPin(r.Context(), gameID, input.Hole, input.Winner)
	}
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) SetLongestDrive(w http.ResponseWriter, r *http.Request) {
	var input WinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	gameID := chi.URLParam(r, "gameID")
	var game *gamedomain.Game
	var err error
	if input.Clear {
		game, err = h.service.ClearLongestDrive(r.Context(), gameID, input.Hole)
	} else {
		game, err = h.service.SetLongestDrive(r.Context(), gameID, input.Hole, input.Winner)
	}
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// MarkRequest sets or clears a per-player achievement mark.
type MarkRequest struct {
	Kind     string              `json:"kind"`
	Hole     int                 `json:"hole"`
	PlayerID gamedomain.PlayerID `json:"playerId"`
	Marked   bool                `json:"marked"`
}

func (h *GameHandler) SetMark(w http.ResponseWriter, r *http.Request) {
	var input MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	gameID := chi.URLParam(r, "gameID")
	ctx := r.Context()
	var game *gamedomain.Game
	var err error
	switch input.Kind {
	case "greenie":
		game, err = h.service.SetGreenie(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	case "fiver":
		game, err = h.service.SetFiver(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	case "four":
		game, err = h.service.SetFour(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	case "sandy":
		game, err = h.service.SetSandy(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	case "doubleSandy":
		game, err = h.service.SetDoubleSandy(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	case "lostBall":
		game, err = h.service.SetLostBall(ctx, gameID, input.Hole, input.PlayerID, input.Marked)
	default:
		http.Error(w, fmt.Sprintf("unknown mark kind %q", input.Kind), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// ToggleRequest enables or disables a hole-level side game.
type ToggleRequest struct {
	Kind    string `json:"kind"`
	Hole    int    `json:"hole"`
	Enabled bool   `json:"enabled"`
}

func (h *GameHandler) SetHoleToggle(w http.ResponseWriter, r *http.Request) {
	var input ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	gameID := chi.URLParam(r, "gameID")
	var game *gamedomain.Game
	var err error
	switch input.Kind {
	case "sandyHole":
		game, err = h.service.SetSandyHole(r.Context(), gameID, input.Hole, input.Enabled)
	case "lostBallHole":
		game, err = h.service.SetLostBallHole(r.Context(), gameID, input.Hole, input.Enabled)
	default:
		http.Error(w, fmt.Sprintf("unknown toggle kind %q", input.Kind), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// ChangeCourseRequest swaps the game to a different course.
type ChangeCourseRequest struct {
	CourseID string `json:"courseId"`
}

func (h *GameHandler) ChangeCourse(w http.ResponseWriter, r *http.Request) {
	var input ChangeCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	game, err := h.service.ChangeCourse(r.Context(), chi.URLParam(r, "gameID"), input.CourseID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// ArchiveRequest names the saved scorecard.
type ArchiveRequest struct {
	Name string `json:"name"`
}

func (h *GameHandler) Archive(w http.ResponseWriter, r *http.Request) {
	var input ArchiveRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
			return
		}
	}

	scorecard, err := h.service.SaveScorecard(r.Context(), chi.URLParam(r, "gameID"), input.Name)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, scorecard)
}

func (h *GameHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	data, err := h.service.ExportXLSX(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", gameID+".xlsx"))
	w.Write(data)
}

func (h *GameHandler) StandingsChart(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.StandingsChart(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeGameError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// writeGameError maps service errors onto HTTP status codes.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameservice.ErrGameNotFound),
		errors.Is(err, gameservice.ErrScorecardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, gameservice.ErrUnknownPlayer),
		errors.Is(err, gameservice.ErrUnknownHole),
		errors.Is(err, gameservice.ErrInvalidImport):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, gameservice.ErrSideClosed),
		errors.Is(err, gameservice.ErrIneligibleHole),
		errors.Is(err, gameservice.ErrMarkGated):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
