package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr       string
	DiceSeed       int64 // 0 seeds from the clock
	RoomCodeLength int
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:       getenvStr("HTTP_ADDR", ":8080"),
		DiceSeed:       getenvInt64("DICE_SEED", 0),
		RoomCodeLength: getenvInt("ROOM_CODE_LENGTH", 6),
	}
}
