package mq

import "github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"

const TaskSendItinerary = "planner:send_itinerary"

// SendItineraryPayload carries everything the mail worker needs; the session
// may be gone by the time the task runs.
type SendItineraryPayload struct {
	Email        string                `json:"email"`
	PlanDate     string                `json:"plan_date"`
	EventType    string                `json:"event_type"`
	Location     string                `json:"location"`
	GroupDisplay string                `json:"group_display"`
	Language     string                `json:"language"`
	Blocks       []itinerary.PlanBlock `json:"blocks"`
}

// FeedbackEvent is published when a complaint or negative emotion is detected.
type FeedbackEvent struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Language  string `json:"language"`
	At        int64  `json:"at"`
}
