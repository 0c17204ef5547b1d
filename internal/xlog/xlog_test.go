package xlog

import (
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	test.That(t, !New(false).Core().Enabled(zap.DebugLevel))
	test.That(t, New(false).Core().Enabled(zap.InfoLevel))
	test.That(t, New(true).Core().Enabled(zap.DebugLevel))
}
