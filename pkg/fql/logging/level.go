package logging

import (
	"bytes"
	"strings"
)

// Level represents different logging levels.
type Level int

const (
	DEBUG Level = iota + 1
	INFO
	NOTICE
	WARN
	ERROR
	FATAL
)

const (
	levelDebug  = "DEBUG"
	levelInfo   = "INFO"
	levelNotice = "NOTICE"
	levelWarn   = "WARN"
	levelError  = "ERROR"
	levelFatal  = "FATAL"
)

// String constants for logging levels.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return levelDebug
	case INFO:
		return levelInfo
	case NOTICE:
		return levelNotice
	case WARN:
		return levelWarn
	case ERROR:
		return levelError
	case FATAL:
		return levelFatal
	default:
		return ""
	}
}

//nolint:gomnd // Color codes are sent as numbers.
func (l Level) color() uint {
	switch l {
	case ERROR, FATAL:
		return 160
	case WARN, NOTICE:
		return 220
	case INFO:
		return 6
	case DEBUG:
		return 8
	default:
		return 37
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	buff := bytes.NewBufferString(`"`)
	buff.WriteString(l.String())
	buff.WriteString(`"`)

	return buff.Bytes(), nil
}

// GetLevelFromString converts a string to a logging level. Unknown values map to INFO.
func GetLevelFromString(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case levelDebug:
		return DEBUG
	case levelInfo:
		return INFO
	case levelNotice:
		return NOTICE
	case levelWarn:
		return WARN
	case levelError:
		return ERROR
	case levelFatal:
		return FATAL
	default:
		return INFO
	}
}
