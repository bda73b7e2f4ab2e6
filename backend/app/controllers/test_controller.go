package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ieltsim/backend/app/dto"
	"ieltsim/backend/app/middleware"
	"ieltsim/backend/app/scoring"
	"ieltsim/backend/app/services"
)

type TestController struct {
	Results          *services.ResultService
	Stats            *services.StatsService
	LeaderboardLimit int
}

func NewTestController(results *services.ResultService, stats *services.StatsService, leaderboardLimit int) *TestController {
	if leaderboardLimit <= 0 {
		leaderboardLimit = 10
	}
	return &TestController{Results: results, Stats: stats, LeaderboardLimit: leaderboardLimit}
}

// Questions serves the bank without the answer key.
func (c *TestController) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Questions())
}

// Answers serves the key for post-test review.
func (c *TestController) Answers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Answers())
}

func (c *TestController) Submit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
		writeError(w, http.StatusBadRequest, "Answers must be provided as an array")
		return
	}
	if len(req.Answers) != scoring.Total {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Answers must be an array of %d entries", scoring.Total))
		return
	}
	res, err := c.Results.Submit(claims.UserID, req.Answers)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.SubmitResponse{
		Message:   "Test submitted successfully",
		ResultID:  res.ID,
		Score:     res.Score,
		BandScore: res.BandScore,
		Total:     scoring.Total,
	})
}

func (c *TestController) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	results, err := c.Results.History(claims.UserID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (c *TestController) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Stats.Leaderboard(c.LeaderboardLimit)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
