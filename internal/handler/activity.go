package handler

import (
	"net/http"

	"github.com/foxuse/showcase/internal/model"
)

type activityRequest struct {
	Action      string `json:"action"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	AdminUser   string `json:"adminUser"`
}

// ListActivities returns the 20 most recent activities, newest first
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.ListRecent(r.Context(), model.RecentActivityLimit)
	if err != nil {
		writeServerError(w, "Failed to fetch activities", err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// CreateActivity appends a new activity to the feed (admin only)
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := readJSON(r, &req); err != nil {
		writeServerError(w, "Failed to create activity", err)
		return
	}

	if req.AdminUser == "" {
		req.AdminUser = model.DefaultAdminUser
	}

	activity := model.Activity{
		Action:      req.Action,
		ProductName: req.ProductName,
		Category:    req.Category,
		AdminUser:   req.AdminUser,
	}
	if err := h.activities.Create(r.Context(), &activity); err != nil {
		writeServerError(w, "Failed to create activity", err)
		return
	}

	h.log.AdminAction("activity.create", "activity", activity.ID)
	writeJSON(w, http.StatusCreated, activity)
}
