package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the process logger. Production logs JSON at info level,
// every other environment logs text at debug level.
func Init(environment string) {
	log.SetOutput(os.Stdout)
	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
		return
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
}

func Debug(msg string, kv ...any) { log.WithFields(fields(kv)).Debug(msg) }

func Info(msg string, kv ...any) { log.WithFields(fields(kv)).Info(msg) }

func Warn(msg string, kv ...any) { log.WithFields(fields(kv)).Warn(msg) }

// Error accepts either a bare error ("msg", err) or key/value pairs
// ("msg", "error", err).
func Error(msg string, kv ...any) {
	if len(kv) == 1 {
		log.WithError(asError(kv[0])).Error(msg)
		return
	}
	log.WithFields(fields(kv)).Error(msg)
}

func Fatal(msg string, kv ...any) {
	if len(kv) == 1 {
		log.WithError(asError(kv[0])).Fatal(msg)
		return
	}
	log.WithFields(fields(kv)).Fatal(msg)
}

// fields converts variadic key/value pairs into logrus fields; keys that are
// not strings are skipped rather than panicking.
func fields(kv []any) logrus.Fields {
	f := make(logrus.Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f[key] = kv[i+1]
	}
	return f
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
