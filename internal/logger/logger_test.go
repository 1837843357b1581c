package logger_test

import (
	"testing"

	"github.com/sgaunet/timerange/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNoLogger(t *testing.T) {
	log := logger.NoLogger()

	assert.NotNil(t, log, "NoLogger should not return nil")

	// A silent logger must swallow every level without panicking so CLI
	// results stay the only output.
	assert.NotPanics(t, func() {
		log.Debugf("Catalog miss, deriving label: expr=%s", "now-13h")
		log.Infof("Range resolved: timezone=%s", "UTC")
		log.Warnf("Expression not recognized: expression=%s", "now-3d/d")
		log.Error("failed to resolve range")
	}, "NoLogger methods should not panic")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug", logLevel: "debug"},
		{name: "info", logLevel: "info"},
		{name: "warn", logLevel: "warn"},
		{name: "error", logLevel: "error"},
		{name: "empty falls back to info", logLevel: ""},
		{name: "unknown falls back to info", logLevel: "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.NewLogger(tt.logLevel)
			assert.NotNil(t, log, "NewLogger should not return nil")

			assert.NotPanics(t, func() {
				log.Debugf("Interval calculated: resolution=%d", 100)
				log.Infof("Range resolved: from=%s to=%s", "now-6h", "now")
				log.Warnf("Expression not recognized: expression=%s", "bogus")
				log.Error("failed to load configuration")
			}, "NewLogger methods should not panic")
		})
	}
}
