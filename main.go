package main

import (
	"noteva/pkg/cli"
	"noteva/pkg/config"
)

func main() {
	// Initialize config
	config.Init()
	cli.Execute()
}
