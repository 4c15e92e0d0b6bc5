package models

// LogLevel is the severity of a LogEntry.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelSuccess LogLevel = "success"
)

// GroupStatus is the membership state of a Group.
type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "active"
	GroupStatusInactive GroupStatus = "inactive"
)

// APIType classifies an APIEntry.
type APIType string

const (
	APITypeVideo    APIType = "video"
	APITypeImage    APIType = "image"
	APITypeAI       APIType = "ai"
	APITypeDownload APIType = "download"
	APITypeCustom   APIType = "custom"
)

// DownloadType classifies a DownloadEntry.
type DownloadType string

const (
	DownloadTypeVideo DownloadType = "video"
	DownloadTypeImage DownloadType = "image"
	DownloadTypeFile  DownloadType = "file"
	DownloadTypeLog   DownloadType = "log"
)

// DownloadStatusCompleted is the default status of a new download.
const DownloadStatusCompleted = "completed"

// BotStatus is the lifecycle state of the simulated bot.
type BotStatus string

const (
	BotStatusOnline      BotStatus = "online"
	BotStatusOffline     BotStatus = "offline"
	BotStatusMaintenance BotStatus = "maintenance"
	BotStatusRestarting  BotStatus = "restarting"
)

// AllBotStatuses lists every BotStatus value.
var AllBotStatuses = []BotStatus{
	BotStatusOnline,
	BotStatusOffline,
	BotStatusMaintenance,
	BotStatusRestarting,
}

// BotAction is a control command accepted by the bot.
type BotAction string

const (
	BotActionStart   BotAction = "start"
	BotActionStop    BotAction = "stop"
	BotActionRestart BotAction = "restart"
)

// ZeroUptime is the uptime reported right after a restart.
const ZeroUptime = "0d 0h 0m"
