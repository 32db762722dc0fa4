package config

import (
	"log"
	"sync"

	env "github.com/caarlos0/env/v6"
)

var Config = struct {
	LoggerLevel string `env:"LOG_LEVEL" envDefault:"info"`

	VerifyWorkers int `env:"VERIFY_WORKERS" envDefault:"4"`
	MaxBatchDraws int `env:"MAX_BATCH_DRAWS" envDefault:"10000"`
}{}

var (
	once = &sync.Once{}
)

func init() {
	once.Do(func() {
		if err := env.Parse(&Config); err != nil {
			log.Fatalf("config parsing failed: %v\n", err)
		}

		if Config.VerifyWorkers < 1 {
			Config.VerifyWorkers = 1
		}
	})
}
