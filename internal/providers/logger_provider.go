package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pbaille/blueprint/internal/structures"
	"github.com/rs/zerolog"
)

type TypeEnum string

const (
	TypeApp    TypeEnum = "app"
	TypeHTTP   TypeEnum = "http"
	TypeStore  TypeEnum = "store"
	TypeSubmit TypeEnum = "submit"
)

const logFileName = "blueprint.log"

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

// NewLogProvider logs to stderr and, when logger.dir is set, to a JSON file in it
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}

	var file *os.File
	if conf.Logger.Dir != "" {
		mode := os.FileMode(conf.Logger.Mode)
		if mode == 0 {
			mode = 0644
		}
		file, err = os.OpenFile(filepath.Join(conf.Logger.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("app", AppName).
		Logger()

	return &LogProvider{log: log, file: file}, nil
}

// NewNopLogger discards everything
func NewNopLogger() Logger {
	return &LogProvider{log: zerolog.Nop()}
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.log.Error().Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.log.Warn().Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.log.Debug().Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.log.Info().Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.log.Fatal().Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Close() {
	if l.file != nil {
		_ = l.file.Sync()
		_ = l.file.Close()
	}
}
