// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import (
	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

type ChatRequest struct {
	SessionId string `json:"session_id,optional"`
	Message   string `json:"message"`
	Language  string `json:"language,optional"`
}

type ChatResponse struct {
	SessionId string                    `json:"session_id"`
	Replies   []string                  `json:"replies"`
	Question  string                    `json:"question,omitempty"`
	Chips     []string                  `json:"chips,omitempty"`
	Context   *conversation.PlanContext `json:"context"`
	Blocks    []itinerary.PlanBlock     `json:"blocks,omitempty"`
	Completed bool                      `json:"completed"`
}

type RestartRequest struct {
	SessionId string `json:"session_id"`
	Language  string `json:"language,optional"`
}

type RestartResponse struct {
	SessionId string   `json:"session_id"`
	Replies   []string `json:"replies"`
	Question  string   `json:"question,omitempty"`
	Chips     []string `json:"chips,omitempty"`
}

type GeolocationRequest struct {
	SessionId string  `json:"session_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Text      string  `json:"text,optional"`
}

type GeolocationResponse struct {
	SessionId string                    `json:"session_id"`
	Context   *conversation.PlanContext `json:"context"`
}

type RecommendationsRequest struct {
	SessionId  string   `json:"session_id"`
	BlockId    string   `json:"block_id"`
	Limit      int      `json:"limit,optional"`
	ExcludeIds []string `json:"exclude_ids,optional"`
}

type RecommendationsResponse struct {
	BlockId string            `json:"block_id"`
	Places  []itinerary.Place `json:"places"`
}

type SendItineraryRequest struct {
	SessionId string `json:"session_id"`
	Email     string `json:"email"`
}

type SendItineraryResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
