// Package log provides simple leveled logging for bot-panel.
//
// Four levels are supported: DEBUG (verbose mode only), INFO, WARN and ERROR.
// Errors go to stderr, everything else to stdout, unless SetOutput redirects them.
//
// # Example Usage
//
//	log.Infof("API server listening on %s", addr)
//	log.Warnf("Restart already pending, replacing it")
//	log.Errorf("Failed to write response: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Decoded request: %+v", req)
//
// All functions are safe for concurrent use.
package log
