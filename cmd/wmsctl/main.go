package main

import (
	"os"

	"github.com/jhoicas/wms-gateway/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
