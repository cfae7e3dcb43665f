package config

import "github.com/op/go-logging"

// logConfiguration controls the shared op/go-logging backend level.
type logConfiguration struct {
	LogLvl string
}

func init() {
	Settings.Log.LogLvl = "DEBUG"
}

// Level parses the configured level name, defaulting to DEBUG on garbage
// input so a bad config file never silences logging entirely.
func (l logConfiguration) Level() logging.Level {
	lvl, err := logging.LogLevel(l.LogLvl)
	if err != nil {
		return logging.DEBUG
	}
	return lvl
}
