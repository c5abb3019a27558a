package game

import "github.com/sirupsen/logrus"

func NewLogger(debug bool) *logrus.Logger {
	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.InfoLevel
	if debug {
		lg.Level = logrus.DebugLevel
	}
	return lg
}
