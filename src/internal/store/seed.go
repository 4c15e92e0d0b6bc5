package store

import (
	"encoding/json"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// SeedOptions controls the bootstrap data set.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// Seed installs the bootstrap data set. It is a no-op, returning false, when
// the admin user already exists, so calling it twice never duplicates data.
func Seed(s *Store, opts SeedOptions) bool {
	_, created := s.InsertUserIfAbsent(models.User{
		Username: opts.AdminUsername,
		Password: opts.AdminPassword,
		IsAdmin:  true,
	})
	if !created {
		return false
	}

	s.AddLog(models.LogLevelSuccess, "System initialized")
	s.AddLog(models.LogLevelInfo, "Connected to database")

	s.CreateFeatureToggle(models.FeatureToggle{
		Key:         "auto_reply",
		Label:       "Auto Reply",
		Description: "Automatically reply to new messages",
		IsEnabled:   true,
		NeonColor:   "#39ff14",
	})

	s.CreateGroup(models.Group{
		Name:        "Developers Hub",
		MemberCount: 1250,
		Status:      models.GroupStatusActive,
	})

	configJSON, _ := json.MarshalIndent(map[string]string{
		"version": "1.0.0",
		"theme":   "dark",
	}, "", "  ")
	s.CreateFile(models.BotFile{
		Filename: "config.json",
		Size:     "2 KB",
		Content:  string(configJSON),
	})

	s.CreateAPI(models.APIEntry{
		Name:      "Video Download API v1",
		Endpoint:  "https://api.shourov.com/v1/video",
		Key:       "sk_live_xxxx",
		Type:      models.APITypeVideo,
		IsEnabled: true,
		NeonColor: "#00ffff",
	})
	s.CreateAPI(models.APIEntry{
		Name:      "Image Search AI",
		Endpoint:  "https://api.shourov.com/v1/image",
		Key:       "api_key_yyyy",
		Type:      models.APITypeImage,
		IsEnabled: true,
		NeonColor: "#ff00ff",
	})

	s.CreateDownload(models.DownloadEntry{
		Filename: "bot_backup_jan.zip",
		Type:     models.DownloadTypeFile,
		URL:      "/downloads/backup.zip",
		Size:     "45 MB",
		Status:   models.DownloadStatusCompleted,
	})

	return true
}
