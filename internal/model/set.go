package model

type SetDraft struct {
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}
