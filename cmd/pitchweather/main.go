package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/sidvish/pitchweather/internal/api"
	"github.com/sidvish/pitchweather/internal/dataset"
)

var cli struct {
	Weather string `help:"Path to the weather observations CSV." env:"PITCHWEATHER_WEATHER" default:"data/weather_sample.csv"`
	Matches string `help:"Path to the IPL matches CSV." env:"PITCHWEATHER_MATCHES" default:"data/ipl_matches_sample.csv"`
	Port    string `help:"HTTP listen port." env:"PORT" default:"8080"`
	Watch   bool   `help:"Reload automatically when a CSV changes on disk."`
	Check   bool   `help:"Validate the CSV files and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("pitchweather"),
		kong.Description("Dashboard relating IPL match scoring to match-day weather."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	hub := dataset.NewHub(dataset.Source{
		WeatherPath: cli.Weather,
		MatchesPath: cli.Matches,
	})

	// A schema problem in either file is fatal here. Once serving, failed
	// reloads keep the previous table instead.
	table, err := hub.Reload()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	if cli.Check {
		log.Printf("dataset ok: %d weather rows, %d matches, %d merged",
			table.WeatherRows, table.MatchRows, len(table.Rows))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cli.Watch {
		watcher := dataset.NewWatcher(hub)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("watcher: %v", err)
			}
		}()
	}

	server := api.NewServer(hub, cli.Port)
	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
