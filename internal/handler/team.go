package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/teams-directory/internal/domain"
	"github.com/aidar/teams-directory/internal/projection"
	"github.com/aidar/teams-directory/internal/service"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams обрабатывает GET /teams
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, projection.ProjectTeams(teams))
}

// GetTeamsByName обрабатывает GET /team/{teamName}
func (h *TeamHandler) GetTeamsByName(w http.ResponseWriter, r *http.Request) {
	teamName := chi.URLParam(r, "teamName")

	teams, err := h.teamService.GetTeamsByName(r.Context(), teamName)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, projection.ProjectTeams(teams))
}

// GetTeamsByCompany обрабатывает GET /company/{companyName}
func (h *TeamHandler) GetTeamsByCompany(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "companyName")

	teams, err := h.teamService.GetTeamsByCompany(r.Context(), companyName)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, projection.ProjectTeams(teams))
}

// AddTeam обрабатывает POST /add/team
func (h *TeamHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var team domain.NewTeam
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeBadRequest), "invalid request body")
		return
	}

	// Сохраняем команду вместе с участниками
	if _, err := h.teamService.AddTeam(r.Context(), &team); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithText(w, r, http.StatusOK, "Added Team")
}
