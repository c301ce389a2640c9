package model

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
