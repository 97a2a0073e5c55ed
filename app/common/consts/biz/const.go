package biz

import "time"

const (
	// SessionTTL bounds how long an idle conversation keeps its context.
	SessionTTL      = time.Hour * 2
	SessionSweep    = time.Minute * 10
	DefaultRadiusKm = 15.0
	// Geolocation searches use a tighter radius than named cities.
	GeoRadiusKm = 10.0

	MailQueue         = "mail"
	FeedbackTopicKey  = "feedback"
	ComplaintEventTag = "complaint"
)
