package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rep/app"
	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/config"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	config.InitializePaths()

	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)

		if gateway.IsPersistence(err) {
			pterm.Printfln(
				"Check the gateway settings in %s",
				config.ConfigFilePath(),
			)
		}

		os.Exit(1)
	}
}
