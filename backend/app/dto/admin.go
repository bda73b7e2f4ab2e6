package dto

import "time"

type StatsResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalTests       int64   `json:"totalTests"`
	AverageBandScore float64 `json:"averageBandScore"`
}

type UserSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
