package common

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func init() {
	logger := logrus.StandardLogger()
	logger.Out = os.Stdout
	logger.Formatter = &logrus.TextFormatter{}
	logger.AddHook(&DefaultFieldsHook{})
}

// ConfigureLogger applies the level and the output format ("text" or "json") to the standard logger.
func ConfigureLogger(level, format string) error {
	logger := logrus.StandardLogger()
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logger.SetLevel(lvl)
	}
	if strings.EqualFold(format, "json") {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{}
	}
	return nil
}

type DefaultFieldsHook struct {
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["serviceName"] = GetServiceName()
	e.Data["serviceInstance"] = GetServiceInstance()
	return nil
}
