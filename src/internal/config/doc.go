// Package config handles configuration file parsing and validation for bot-panel.
//
// The configuration is a TOML file with four sections:
//
//	[server]
//	bind_address = "0.0.0.0:5000"
//	ui_path = "/opt/share/bot-panel/ui"
//
//	[auth]
//	admin_username = "admin"
//	admin_password = "password123"
//	require_token = false
//
//	[bot]
//	name = "Shourov AI"
//	restart_delay_ms = 3000
//	restart_policy = "replace"
//
//	[log]
//	verbose = false
//
// Every field is optional; LoadConfig fills missing ones with defaults and
// ValidateConfig reports every invalid field at once.
package config
