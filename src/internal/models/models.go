// Package models defines the entity kinds held by the store.
package models

import "time"

// Entity is implemented by every record kept in a store collection.
type Entity interface {
	GetID() int
	SetID(id int)
}

// User is an account allowed to log into the panel.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (u *User) GetID() int   { return u.ID }
func (u *User) SetID(id int) { u.ID = id }

// LogEntry is one line of the bot activity log.
type LogEntry struct {
	ID        int       `json:"id"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *LogEntry) GetID() int   { return l.ID }
func (l *LogEntry) SetID(id int) { l.ID = id }

// FeatureToggle is a named on/off switch shown on the features page.
type FeatureToggle struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"isEnabled"`
	NeonColor   string `json:"neonColor"`
}

func (f *FeatureToggle) GetID() int   { return f.ID }
func (f *FeatureToggle) SetID(id int) { f.ID = id }

// Group is a chat group the bot is a member of.
type Group struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	MemberCount int         `json:"memberCount"`
	Status      GroupStatus `json:"status"`
	JoinedAt    time.Time   `json:"joinedAt"`
}

func (g *Group) GetID() int   { return g.ID }
func (g *Group) SetID(id int) { g.ID = id }

// BotFile is an editable text file belonging to the bot.
type BotFile struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	Size         string    `json:"size"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

func (f *BotFile) GetID() int   { return f.ID }
func (f *BotFile) SetID(id int) { f.ID = id }

// APIEntry is an external API registration used by bot commands.
type APIEntry struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Endpoint  string  `json:"endpoint"`
	Key       string  `json:"key"`
	Type      APIType `json:"type"`
	IsEnabled bool    `json:"isEnabled"`
	NeonColor string  `json:"neonColor"`
}

func (a *APIEntry) GetID() int   { return a.ID }
func (a *APIEntry) SetID(id int) { a.ID = id }

// DownloadEntry records a file produced or fetched by the bot.
type DownloadEntry struct {
	ID        int          `json:"id"`
	Filename  string       `json:"filename"`
	Type      DownloadType `json:"type"`
	URL       string       `json:"url"`
	Size      string       `json:"size"`
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

func (d *DownloadEntry) GetID() int   { return d.ID }
func (d *DownloadEntry) SetID(id int) { d.ID = id }
