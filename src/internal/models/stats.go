package models

// BotStats is the live health record of the simulated bot.
type BotStats struct {
	Status        BotStatus `json:"status"`
	Uptime        string    `json:"uptime"`
	ActiveThreads int       `json:"activeThreads"`
	TotalMessages int       `json:"totalMessages"`
	CPUUsage      int       `json:"cpuUsage"`
	MemoryUsage   int       `json:"memoryUsage"`
}
