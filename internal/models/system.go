package models

// SystemInfo describes host identity and uptime.
type SystemInfo struct {
	ComputerName string `json:"ComputerName"`
	UserName     string `json:"UserName"`
	OSVersion    string `json:"OSVersion"`
	IsAdmin      bool   `json:"IsAdmin"`
	Uptime       string `json:"Uptime"`
	Timestamp    string `json:"Timestamp"`
}
