package services

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"time"

	"healthsnap/internal/models"

	"github.com/shirou/gopsutil/v3/host"
)

// GetSystemInfo returns host identity, privilege level and formatted uptime.
func GetSystemInfo() (*models.SystemInfo, error) {
	info, err := host.Info()
	if err != nil {
		return nil, err
	}

	userName := ""
	if current, err := user.Current(); err == nil {
		userName = current.Username
	} else {
		log.Printf("Warning: Could not resolve current user: %v", err)
	}

	return &models.SystemInfo{
		ComputerName: info.Hostname,
		UserName:     userName,
		OSVersion:    fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion),
		IsAdmin:      os.Geteuid() == 0,
		Uptime:       formatUptime(time.Duration(info.Uptime) * time.Second),
		Timestamp:    time.Now().Format(time.RFC3339),
	}, nil
}

// formatUptime renders a duration as "{days}d {hours}h {minutes}m" with
// hours and minutes as remainder components.
func formatUptime(uptime time.Duration) string {
	totalMinutes := int(uptime.Minutes())
	days := totalMinutes / (24 * 60)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
