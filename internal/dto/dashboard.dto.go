package dto

// DashboardStats are recomputed on every read; nothing is cached.
type DashboardStats struct {
	TotalClients     int `json:"totalClients"`
	PendingFollowUps int `json:"pendingFollowUps"`
	SentThisWeek     int `json:"sentThisWeek"`
	ResponseRate     int `json:"responseRate"`
}

// EmailStatus reports whether the outbound email capability is usable.
type EmailStatus struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}
