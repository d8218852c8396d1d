package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGetInitializesOnceAtInfoLevel(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Expected a usable logger")
	}
	if l.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level before Init, got %s", l.GetLevel())
	}

	// Level methods must be callable straight off Get.
	Get().Debug().Msg("suppressed below the info level")

	Init("debug")
	if Get().GetLevel() != zerolog.InfoLevel {
		t.Errorf("A later Init should not change the level, got %s", Get().GetLevel())
	}
}
