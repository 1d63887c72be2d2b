package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В release режиме пишет JSON с уровнем info, иначе текст с уровнем debug.
// Переменная LOG_LEVEL переопределяет уровень в любом режиме.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			l.WithError(err).Warnf("unknown LOG_LEVEL %q, keeping %s", raw, l.GetLevel())
			return l
		}
		l.SetLevel(level)
	}

	return l
}
