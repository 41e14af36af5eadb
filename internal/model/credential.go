package model

// Role decides which menu a credential unlocks. Credentials correlate with an
// Account only by number; whether the account actually exists is checked
// separately at login time.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
