package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"orderbot/pkg/bot"
	"orderbot/pkg/config"
	"orderbot/pkg/handler"
	"orderbot/pkg/pipeline"
	"orderbot/pkg/session"
	"orderbot/pkg/sink"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	factory, err := sink.NewFactory(cfg)
	if err != nil {
		logrus.Fatalf("Error selecting sink backend: %v", err)
	}

	store := session.NewStore()

	if cfg.Server.Port > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.HandleFunc("/healthz", handler.HealthCheckHandler(store))
			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			logrus.Infof("Health endpoint listening on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logrus.Errorf("Health server stopped: %v", err)
			}
		}()
	}

	// The notifier needs the API client, so the bot is built first and
	// the pipeline attached afterwards.
	myBot, err := bot.NewBot(cfg.Telegram.Token, store)
	if err != nil {
		logrus.Fatalf("Error creating bot: %v", err)
	}

	notifier := bot.NewNotifier(myBot.API(), cfg.Telegram.AdminChatID)
	timeout := time.Duration(cfg.Sink.TimeoutSeconds) * time.Second
	myBot.SetPipeline(pipeline.New(factory, notifier, timeout))

	myBot.StartListening()
}
