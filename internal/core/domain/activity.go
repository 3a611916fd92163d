package domain

import "time"

// Activity is an audit record of a marketplace mutation, written
// asynchronously by the activity pipeline.
type Activity struct {
	Collection string    `bson:"collection"`
	Subject    string    `bson:"subject"`
	Action     string    `bson:"action"`
	Actor      string    `bson:"actor"`
	Timestamp  time.Time `bson:"timestamp"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
