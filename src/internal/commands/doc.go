// Package commands implements CLI command handlers for bot-panel.
//
// Each command implements the Runner interface: Init parses the command's own
// flags and loads configuration, Run does the work, Name is used for routing
// from main.
//
// # Available Commands
//
//   - server: Run the REST API (and the web UI when ui_path is set)
//   - gen-types: Write TypeScript declarations for the API payloads
//   - routes: Print the REST contract table
//
// # Example Usage
//
//	cmd := commands.CreateServerCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/bot-panel/bot-panel.toml"}
//	if err := cmd.Init([]string{"-bind", "127.0.0.1:5000"}, ctx); err != nil {
//	    log.Fatalf("init: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("run: %v", err)
//	}
package commands
