package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/kamataryo/sandbox-same-site-cookies/cmd/samesite/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		EnvFile string            `help:"Load environment variables from this file before reading config." name:"env-file" type:"path"`
		Version kong.VersionFlag  `help:"Print version and exit."`
		Serve   commands.ServeCmd `cmd:"" default:"1" help:"Serve every registered site on one listener."`
		Sites   commands.SitesCmd `cmd:"" help:"List the registered sites and their SameSite policy."`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("samesite"),
		kong.Description("SameSite cookie session demo server."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{EnvFile: cli.EnvFile, Version: version})
	cmd.FatalIfErrorf(err)
}
