package contract

import (
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /api/login. Both fields must be present;
// empty strings are checked as credentials.
type LoginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// SessionUser is the user part of a successful login.
type SessionUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// ControlRequest is the body of POST /api/bot/control.
type ControlRequest struct {
	Action models.BotAction `json:"action" validate:"required,oneof=start stop restart"`
}

// ControlResponse reports the immediate result of a control command.
type ControlResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	NewStatus models.BotStatus `json:"newStatus"`
}

// ToggleRequest flips a feature toggle or an API registration.
type ToggleRequest struct {
	IsEnabled *bool `json:"isEnabled" validate:"required"`
}

// FileSummary is a file listing entry without content.
type FileSummary struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	Size         string    `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// FileUpdateRequest replaces a file's content. Empty content is allowed.
type FileUpdateRequest struct {
	Content *string `json:"content" validate:"required"`
}

// FileUpdateResponse confirms a file update.
type FileUpdateResponse struct {
	Success bool `json:"success"`
}

// CreateAPIRequest registers an external API.
type CreateAPIRequest struct {
	Name      string         `json:"name" validate:"required"`
	Endpoint  string         `json:"endpoint" validate:"required,url"`
	Key       string         `json:"key"`
	Type      models.APIType `json:"type" validate:"required,oneof=video image ai download custom"`
	IsEnabled *bool          `json:"isEnabled"`
	NeonColor string         `json:"neonColor" validate:"omitempty,hexcolor"`
}

// CreateDownloadRequest records a download.
type CreateDownloadRequest struct {
	Filename string              `json:"filename" validate:"required"`
	Type     models.DownloadType `json:"type" validate:"required,oneof=video image file log"`
	URL      string              `json:"url" validate:"required"`
	Size     string              `json:"size" validate:"required"`
	Status   string              `json:"status"`
}

// ChatRequest asks the canned assistant a question.
type ChatRequest struct {
	Message *string `json:"message" validate:"required"`
	Lang    string `json:"lang" validate:"required,oneof=en bn"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}
