package model

type Action string

const (
	ActionRegisterAdmin  Action = "register_admin"
	ActionCreateCategory Action = "create_category"
	ActionCreateSet      Action = "create_set"
	ActionCreateCard     Action = "create_card"
	ActionStartGame      Action = "start_game"
	ActionGenerateQR     Action = "generate_qr"
)

// Outcome is the result of one action as the operator sees it.
type Outcome struct {
	ID       string `json:"id"`
	Action   Action `json:"action"`
	OK       bool   `json:"ok"`
	Alert    string `json:"alert"`
	GameCode string `json:"game_code,omitempty"`
	Ctime    int64  `json:"ctime"`
}

type BackendStatus struct {
	Checked   bool   `json:"checked"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
	CheckedAt int64  `json:"checked_at"`
}
