package main

import (
	"os"

	"github.com/BruksfildServices01/softbarber/internal/cli"
)

// set with -ldflags "-X main.buildVersion=... -X main.buildDate=..."
var (
	buildVersion string
	buildDate    string
)

func main() {
	if err := cli.Execute(buildVersion, buildDate); err != nil {
		os.Exit(1)
	}
}
