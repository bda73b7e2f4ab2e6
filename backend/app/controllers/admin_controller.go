package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ieltsim/backend/app/dto"
	"ieltsim/backend/app/services"
)

type AdminController struct {
	Users *services.UserService
	Stats *services.StatsService
}

func NewAdminController(users *services.UserService, stats *services.StatsService) *AdminController {
	return &AdminController{Users: users, Stats: stats}
}

func (c *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.Stats()
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers()
	if err != nil {
		writeStorageError(w, err)
		return
	}
	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserSummary{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := c.Users.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
