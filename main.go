package main

import (
	cmd "layoutdss/cmd/cli"
)

// @title Layout DSS API
// @version 1.0
// @description Discadelta segment layout solver service
// @BasePath /api/v1
func main() {
	cmd.Execute()
}
