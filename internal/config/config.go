package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Player kinds: "human", "easy", "medium" or "hard".
	WhitePlayer string
	BlackPlayer string

	// MoveLimit caps each side's moves before a tie; 0 keeps the
	// engine default.
	MoveLimit int

	DevLogging bool
}

var AppConfig *Config

func LoadConfig() *Config {
	whitePlayer := GetEnv("WHITE_PLAYER", "hard")
	blackPlayer := GetEnv("BLACK_PLAYER", "human")
	moveLimit := GetEnvAsInt("MOVE_LIMIT", 0)
	devLogging := GetEnv("LOG_MODE", "prod") == "dev"

	AppConfig = &Config{
		WhitePlayer: whitePlayer,
		BlackPlayer: blackPlayer,
		MoveLimit:   moveLimit,
		DevLogging:  devLogging,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
