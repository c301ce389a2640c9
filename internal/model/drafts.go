package model

// Drafts is the complete form state: one draft per entity plus the game code.
type Drafts struct {
	Admin    AdminCredentials `json:"admin"`
	Category CategoryDraft    `json:"category"`
	Set      SetDraft         `json:"set"`
	Card     CardDraft        `json:"card"`
	Game     GameDraft        `json:"game"`
	Code     string           `json:"code"`
}

func DefaultDrafts() Drafts {
	return Drafts{
		Category: CategoryDraft{Color: DefaultCategoryColor},
		Set:      SetDraft{CategoryID: 1},
		Card:     CardDraft{Number: 1, Hashtags: []string{}, SetID: 1},
		Game:     GameDraft{HostID: 1},
	}
}

// Clone returns a copy that shares no slices with d.
func (d Drafts) Clone() Drafts {
	out := d
	out.Card.Hashtags = append([]string{}, d.Card.Hashtags...)
	return out
}
