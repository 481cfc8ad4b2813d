//go:build headless

package cmd

import (
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/config"
)

func showWindow(config.Config, logrus.FieldLogger) error {
	return errors.New("window support is not enabled; rebuild without -tags headless")
}
