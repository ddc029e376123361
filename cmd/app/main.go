// entry point to app :)
package main

import (
	"errors"
	"io/fs"

	"github.com/ds124wfegd/word-blender/config"
	"github.com/ds124wfegd/word-blender/internal/appServer"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Cannot read .env file. Error: {%s}", err.Error())
	}

	viperInstance, err := config.LoadConfig(config.GetEnv("CONFIG_DIR", "./config"))
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	appServer.NewServer(cfg)
}
