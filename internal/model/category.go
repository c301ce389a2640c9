package model

const DefaultCategoryColor = "#000000"

type CategoryDraft struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
