package glium

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDefaultLoggerSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default logger must be disabled at every level so that
	// flatten/upload hot paths pay nothing for logging.
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v, want disabled", level)
		}
	}
}

func TestNopHandlerIsInert(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	// Derived handlers stay nops: attaching attrs or groups must not
	// resurrect output.
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("capacity", 64)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("texture").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestSetLoggerCapturesOutput(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	// Log the way the texture package does at its Debug call sites.
	Logger().Debug("pixel buffer created",
		"label", "staging", "capacity", 256, "format", "U8U8U8U8")

	out := buf.String()
	for _, want := range []string{"pixel buffer created", "capacity=256", "format=U8U8U8U8"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q; got: %s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should install the nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
}

func TestLoggerConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	// Readers log while writers swap the logger; the atomic pointer
	// must keep every goroutine on a valid logger throughout.
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("flatten", "width", 8, "height", 4)
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledDebugLog(b *testing.B) {
	// The cost of a Debug call on the default (silent) logger: this is
	// what every conversion pays when logging is off.
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("pixel buffer created", "capacity", 1024)
	}
}
