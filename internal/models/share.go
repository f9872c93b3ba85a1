package models

import "time"

const (
	ShareTypeUser  int16 = 1
	ShareTypeGroup int16 = 2
	ShareTypeLink  int16 = 3
)

type Share struct {
	ID           int64     `json:"id"`
	Parent       *int64    `json:"parent"`
	ShareType    int16     `json:"share_type"`
	ItemSource   string    `json:"item_source"`
	UIDOwner     string    `json:"uid_owner"`
	UIDInitiator string    `json:"uid_initiator"`
	CreatedAt    time.Time `json:"created_at"`
}
