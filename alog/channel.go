package alog

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
)

// Predefined WriterType constants.
const (
	WRITERTYPE_CONSOLE_STDOUT WriterType = "console-stdout"
	WRITERTYPE_CONSOLE_STDERR WriterType = "console-stderr"
	WRITERTYPE_STDOUT         WriterType = "stdout"
	WRITERTYPE_STDERR         WriterType = "stderr"
	WRITERTYPE_FILE           WriterType = "file"
)

// Channel represents a logging channel with specific configurations.
type Channel struct {
	Name              ChannelLabel       `json:"name,omitempty"`
	LogLevel          string             `json:"logLevel,omitempty"`
	WriterTypes       WriterTypes        `json:"writerTypes,omitempty"`
	FileLoggerOptions *FileLoggerOptions `json:"fileLoggerOptions,omitempty"`

	level  zerolog.Level
	logger zerolog.Logger
}

// Channels is a slice of pointers to Channel.
type Channels []*Channel

// Initialize sets up the logging channel with the provided configurations.
func (ch *Channel) Initialize(prov IChannelProvisioner) error {
	if ch == nil {
		return fmt.Errorf("channel is nil")
	}
	if prov == nil {
		return fmt.Errorf("channel provisioner is nil")
	}
	if ch.Name.IsEmpty() {
		return fmt.Errorf("channel name is empty")
	}

	// Parse the log level from the configuration.
	lvl, err := zerolog.ParseLevel(ch.LogLevel)
	if err != nil {
		ch.level = zerolog.ErrorLevel
	} else {
		ch.level = lvl
	}

	// Setup file logger options if the WriterType includes file logging.
	if ch.WriterTypes.HasMatch(WRITERTYPE_FILE) {
		if ch.FileLoggerOptions == nil {
			ch.FileLoggerOptions = prov.GetFileLoggerOptions()
			if ch.FileLoggerOptions == nil {
				ch.FileLoggerOptions = &FileLoggerOptions{
					MaxSize:    25,
					MaxBackups: 10,
					MaxAge:     14,
					Compress:   true,
				}
			}
		}
	}

	writers, err := prov.GetWriters(ch, prov)
	if err != nil {
		return fmt.Errorf("get channel writers failed: %s", err)
	}

	if len(writers) == 0 {
		return fmt.Errorf("no writer types found")
	}

	// Create a new logger with the configured writers and log level.
	ch.logger = prov.AddWith(zerolog.New(io.MultiWriter(writers...)).Level(ch.level))

	return nil
}

