// filepath: cmd/retrohub/main.go
package main

import (
	"retrohub/internal/cli"
)

// @title RetroHub API
// @version 0.1.0
// @description REST API for team retrospectives with validated PNG/JPEG attachments.
// @BasePath /
// @schemes http
// @import encoding/json

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
