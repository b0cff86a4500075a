package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tdle/lines-of-action/internal/config"
	"github.com/tdle/lines-of-action/internal/domain"
	"github.com/tdle/lines-of-action/internal/service/bot"
	"github.com/tdle/lines-of-action/internal/service/game"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	logger := NewLogger(cfg.DevLogging)
	defer logger.Sync()

	white, err := buildSource(cfg.WhitePlayer)
	if err != nil {
		logger.Fatalw("bad white player setting", "error", err)
	}
	black, err := buildSource(cfg.BlackPlayer)
	if err != nil {
		logger.Fatalw("bad black player setting", "error", err)
	}

	logger.Infow("starting game",
		"white", describePlayer(cfg.WhitePlayer),
		"black", describePlayer(cfg.BlackPlayer),
		"move_limit", cfg.MoveLimit)

	session, err := game.NewSession(white, black, cfg.MoveLimit, logger)
	if err != nil {
		logger.Fatalw("failed to create game", "error", err)
	}

	winner, err := session.Run()
	if err != nil {
		logger.Fatalw("game aborted", "error", err)
	}

	fmt.Println(session.Board())
	if winner == domain.Empty {
		fmt.Println("The game ends in a tie.")
	} else {
		fmt.Printf("%s wins.\n", winner.FullName())
	}
}

func NewLogger(dev bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("Error: Failed to init logger")
	}
	return logger.Sugar()
}

func buildSource(kind string) (game.MoveSource, error) {
	switch kind {
	case "human":
		return game.NewHumanSource(os.Stdin, os.Stdout), nil
	case "easy", "medium", "hard":
		return game.BotSource{Difficulty: kind}, nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}

func describePlayer(kind string) string {
	if kind == "human" {
		return "human"
	}
	return bot.GetBotName(kind) + " (" + kind + ")"
}
