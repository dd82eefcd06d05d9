// SPDX-License-Identifier: MIT

package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to out.
func NewLogger(c LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l, nil
}

func parseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}

	return logrus.ParseLevel(s)
}
