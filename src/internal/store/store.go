// Package store is the in-memory source of truth for every bot-panel entity.
//
// A Store is built once by the composition root and handed to whatever needs
// it; there is no package-level instance. All data lives in process memory
// and is lost on restart.
package store

import (
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

const (
	defaultFeatureColor = "#00ff00"
	defaultAPIColor     = "#00ffff"
)

// LogHook is called after a log entry has been stored.
type LogHook func(entry models.LogEntry)

// Store holds one collection per entity kind.
type Store struct {
	users     *Collection[models.User, *models.User]
	logs      *Collection[models.LogEntry, *models.LogEntry]
	features  *Collection[models.FeatureToggle, *models.FeatureToggle]
	groups    *Collection[models.Group, *models.Group]
	files     *Collection[models.BotFile, *models.BotFile]
	apis      *Collection[models.APIEntry, *models.APIEntry]
	downloads *Collection[models.DownloadEntry, *models.DownloadEntry]

	now func() time.Time

	hooksMu  sync.RWMutex
	logHooks []LogHook
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		users:     NewCollection[models.User, *models.User](),
		logs:      NewCollection[models.LogEntry, *models.LogEntry](),
		features:  NewCollection[models.FeatureToggle, *models.FeatureToggle](),
		groups:    NewCollection[models.Group, *models.Group](),
		files:     NewCollection[models.BotFile, *models.BotFile](),
		apis:      NewCollection[models.APIEntry, *models.APIEntry](),
		downloads: NewCollection[models.DownloadEntry, *models.DownloadEntry](),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnLog registers a hook invoked after every AddLog.
func (s *Store) OnLog(hook LogHook) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.logHooks = append(s.logHooks, hook)
}

// Counts returns the number of stored entities per kind.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"users":     s.users.Len(),
		"logs":      s.logs.Len(),
		"features":  s.features.Len(),
		"groups":    s.groups.Len(),
		"files":     s.files.Len(),
		"apis":      s.apis.Len(),
		"downloads": s.downloads.Len(),
	}
}

// --- Users ---

// UserByUsername looks a user up by exact username.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	return s.users.Find(func(u models.User) bool {
		return u.Username == username
	})
}

// CreateUser stores a user unconditionally.
func (s *Store) CreateUser(user models.User) models.User {
	return s.users.Create(user)
}

// InsertUserIfAbsent stores user unless the username is taken. It returns the
// stored or existing user and whether a new user was created.
func (s *Store) InsertUserIfAbsent(user models.User) (models.User, bool) {
	return s.users.InsertIfAbsent(func(u models.User) bool {
		return u.Username == user.Username
	}, user)
}

// --- Logs ---

// Logs returns all log entries, newest first.
func (s *Store) Logs() []models.LogEntry {
	entries := s.logs.List()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// AddLog appends a log entry stamped with the current time.
func (s *Store) AddLog(level models.LogLevel, message string) models.LogEntry {
	entry := s.logs.Create(models.LogEntry{
		Level:     level,
		Message:   message,
		Timestamp: s.now(),
	})

	s.hooksMu.RLock()
	hooks := s.logHooks
	s.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook(entry)
	}
	return entry
}

// ClearLogs removes every log entry.
func (s *Store) ClearLogs() {
	s.logs.Clear()
}

// --- Feature toggles ---

// FeatureToggles returns all feature toggles.
func (s *Store) FeatureToggles() []models.FeatureToggle {
	return s.features.List()
}

// FeatureToggle returns one feature toggle.
func (s *Store) FeatureToggle(id int) (models.FeatureToggle, bool) {
	return s.features.Get(id)
}

// CreateFeatureToggle stores a new feature toggle.
func (s *Store) CreateFeatureToggle(toggle models.FeatureToggle) models.FeatureToggle {
	if toggle.NeonColor == "" {
		toggle.NeonColor = defaultFeatureColor
	}
	return s.features.Create(toggle)
}

// ToggleFeature sets the enabled flag of a feature toggle.
func (s *Store) ToggleFeature(id int, enabled bool) (models.FeatureToggle, bool) {
	return s.features.Update(id, func(f *models.FeatureToggle) {
		f.IsEnabled = enabled
	})
}

// --- Groups ---

// Groups returns all groups.
func (s *Store) Groups() []models.Group {
	return s.groups.List()
}

// CreateGroup stores a new group joined now.
func (s *Store) CreateGroup(group models.Group) models.Group {
	if group.Status == "" {
		group.Status = models.GroupStatusActive
	}
	group.JoinedAt = s.now()
	return s.groups.Create(group)
}

// --- Files ---

// Files returns all bot files.
func (s *Store) Files() []models.BotFile {
	return s.files.List()
}

// File returns one bot file.
func (s *Store) File(id int) (models.BotFile, bool) {
	return s.files.Get(id)
}

// CreateFile stores a new file modified now.
func (s *Store) CreateFile(file models.BotFile) models.BotFile {
	if file.Size == "" {
		file.Size = SizeLabel(len(file.Content))
	}
	file.LastModified = s.now()
	return s.files.Create(file)
}

// UpdateFileContent replaces the file content. Size and lastModified keep
// their stored values.
func (s *Store) UpdateFileContent(id int, content string) (models.BotFile, bool) {
	return s.files.Update(id, func(f *models.BotFile) {
		f.Content = content
	})
}

// SizeLabel renders a byte count the way file sizes are shown in the panel.
func SizeLabel(n int) string {
	return humanize.IBytes(uint64(n))
}

// --- APIs ---

// APIs returns all API registrations.
func (s *Store) APIs() []models.APIEntry {
	return s.apis.List()
}

// API returns one API registration.
func (s *Store) API(id int) (models.APIEntry, bool) {
	return s.apis.Get(id)
}

// CreateAPI stores a new API registration.
func (s *Store) CreateAPI(entry models.APIEntry) models.APIEntry {
	if entry.NeonColor == "" {
		entry.NeonColor = defaultAPIColor
	}
	return s.apis.Create(entry)
}

// ToggleAPI sets the enabled flag of an API registration.
func (s *Store) ToggleAPI(id int, enabled bool) (models.APIEntry, bool) {
	return s.apis.Update(id, func(a *models.APIEntry) {
		a.IsEnabled = enabled
	})
}

// DeleteAPI removes an API registration.
func (s *Store) DeleteAPI(id int) bool {
	return s.apis.Delete(id)
}

// --- Downloads ---

// Downloads returns all download records.
func (s *Store) Downloads() []models.DownloadEntry {
	return s.downloads.List()
}

// CreateDownload stores a new download record stamped now.
func (s *Store) CreateDownload(download models.DownloadEntry) models.DownloadEntry {
	if download.Status == "" {
		download.Status = models.DownloadStatusCompleted
	}
	download.Timestamp = s.now()
	return s.downloads.Create(download)
}
