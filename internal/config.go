package internal

import "time"

type Config struct {
	Host            string        `env:"HOST,required=true"`
	Port            int           `env:"PORT,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION,required=true"`
	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	SweepInterval   time.Duration `env:"SWEEP_INTERVAL,required=true"`
	IdleThreshold   time.Duration `env:"IDLE_THRESHOLD,required=true"`
	// ReclaimGrace is how long a dropped identity keeps its waiting entries
	// before they are reaped, giving a reconnect a chance to reclaim them.
	ReclaimGrace time.Duration `env:"RECLAIM_GRACE,required=true"`
	LimitHistory *int          `env:"LIMIT_HISTORY"`
}
