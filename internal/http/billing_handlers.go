package httpapi

import (
	"encoding/json"
	"net/http"

	"viralalchemy-backend-go/internal/services"
)

type PlanDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceLabel  string   `json:"priceLabel"`
	Credits     string   `json:"credits"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}

// Plans are static marketing copy; no payment provider is wired in and the
// upgrade below succeeds unconditionally.
var plans = []PlanDTO{
	{
		ID:         services.PlanFree,
		Name:       "Starter",
		PriceLabel: "$0",
		Credits:    "5 analysis credits",
		Features:   []string{"Content deconstruction", "Script generation", "Asset library"},
	},
	{
		ID:          services.PlanPro,
		Name:        "Pro",
		PriceLabel:  "$19/mo",
		Credits:     "Unlimited",
		Features:    []string{"Unlimited analysis", "Media derivation", "Priority models"},
		Recommended: true,
	},
	{
		ID:         services.PlanEnterprise,
		Name:       "Enterprise",
		PriceLabel: "Contact us",
		Credits:    "Unlimited",
		Features:   []string{"Everything in Pro", "Team workspaces", "Dedicated support"},
	},
}

func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

type UpgradeRequest struct {
	Plan string `json:"plan"`
}

func (s *Server) Upgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Plan != services.PlanPro && req.Plan != services.PlanEnterprise {
		WriteError(w, http.StatusBadRequest, "plan must be pro or enterprise")
		return
	}
	user, ok := s.Users.Upgrade(CurrentUserID(r), req.Plan)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	WriteJSON(w, http.StatusOK, buildUserDTO(user))
}
