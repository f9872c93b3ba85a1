package models

import "time"

type Notification struct {
	App        string    `json:"app"`
	User       string    `json:"user"`
	Timestamp  time.Time `json:"timestamp"`
	ObjectType string    `json:"object_type"`
	ObjectID   string    `json:"object_id"`
	Subject    string    `json:"subject"`
}
