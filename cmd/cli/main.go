package main

import (
	"context"
	"os"

	"livecontent/internal/buildinfo"
	"livecontent/internal/client/cli"
	"livecontent/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
