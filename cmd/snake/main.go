package main

import (
	"os"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"
)

func main() {
	log.SetReportCaller(true)
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.TimeOnly)
	log.SetPrefix("snake")
	if os.Getenv("SNAKE_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	config := domain.DefaultGameConfig()
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	application, err := app.NewApp(config, rng)
	if err != nil {
		log.Fatal("Cannot initialize game", "err", err)
	}

	engine := graphics.NewEngine(application)
	engine.RegisterScreen(screens.NewGameScreen(engine, application.Config()))

	if err := app.PrintControls(os.Stderr); err != nil {
		log.Warn("controls hint", "err", err)
	}

	if err := engine.Run(); err != nil {
		log.Fatal("Cannot initialize game", "err", err)
	}

	application.Stop()
}
