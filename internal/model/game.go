package model

type GameDraft struct {
	HostID int `json:"hostId"`
}
