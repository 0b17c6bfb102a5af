package main

import (
	"flag"
	"os"

	"deedles.dev/kumo/internal/config"
	"deedles.dev/kumo/internal/util"
	"deedles.dev/wlr"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

func main() {
	configPath := flag.String("config", "", "config file to load instead of the default")
	term := util.StringsFlag("term", []string{"alacritty"}, "terminal to use when creating a new window")
	screenshot := util.StringsFlag("screenshot", nil, "command run by the screenshot button, overriding the config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := wlr.Error
	if *debug {
		level = wlr.Debug
	}
	wlr.InitLog(level, nil)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		wlr.Log(wlr.Error, "load config: %v", err)
		os.Exit(1)
	}
	if len(*screenshot) != 0 {
		cfg.Screenshot = *screenshot
	}

	palette, err := cfg.Palette()
	if err != nil {
		wlr.Log(wlr.Error, "load palette: %v", err)
		os.Exit(1)
	}

	server := Server{
		Term:    *term,
		Config:  cfg,
		palette: palette,
	}
	server.init()

	err = server.run()
	if err != nil {
		wlr.Log(wlr.Error, "run server: %v", err)
		os.Exit(1)
	}
}
