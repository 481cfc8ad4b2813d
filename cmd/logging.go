package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/config"
	"io"
)

func newLogger(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.Out = out
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return logger, nil
}
