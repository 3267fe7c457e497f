package resample

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
)

// recorder is a slog.Handler that keeps every record it is handed.
type recorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec.Clone())
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func (r *recorder) take() []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.records
	r.records = nil
	return recs
}

// attrs flattens a record's attributes to strings.
func attrs(rec slog.Record) map[string]string {
	m := map[string]string{}
	rec.Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.String()
		return true
	})
	return m
}

func useRecorder(t *testing.T) *recorder {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	rec := &recorder{}
	SetLogger(slog.New(rec))
	return rec
}

func TestLoggerSilentByDefault(t *testing.T) {
	handlers := map[string]slog.Handler{
		"default":   Logger().Handler(),
		"withAttrs": nopHandler{}.WithAttrs([]slog.Attr{slog.String("k", "v")}),
		"withGroup": nopHandler{}.WithGroup("g"),
	}
	for name, h := range handlers {
		for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
			if h.Enabled(context.Background(), level) {
				t.Errorf("%s: Enabled(%v) = true, want false", name, level)
			}
		}
	}
	if err := (nopHandler{}).Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestResizeLogsDebugRecord(t *testing.T) {
	rec := useRecorder(t)

	if _, err := Resize(diagonal4x4(t), Ratio(1, 2), Bilinear, WithWorkers(2)); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	recs := rec.take()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Level != slog.LevelDebug || recs[0].Message != "resample: resized" {
		t.Fatalf("record = %v %q, want DEBUG \"resample: resized\"", recs[0].Level, recs[0].Message)
	}
	got := attrs(recs[0])
	want := map[string]string{
		"in":      "4x4",
		"out":     "2x2",
		"format":  "Gray",
		"method":  "bilinear",
		"numeric": "fixed",
		"policy":  "center",
		"workers": "2",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %s = %q, want %q", k, got[k], v)
		}
	}
	if _, ok := got["duration"]; !ok {
		t.Error("attr duration missing")
	}
}

func TestResizeLogsRejection(t *testing.T) {
	rec := useRecorder(t)

	tests := []struct {
		name   string
		scale  Scale
		method Method
	}{
		{"zero factor", Factor(0), Bilinear},
		{"zero ratio", Ratio(0, 2), Nearest},
		{"unknown method", Factor(0.5), Method(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resize(diagonal4x4(t), tt.scale, tt.method); err == nil {
				t.Fatal("Resize succeeded, want error")
			}
			recs := rec.take()
			if len(recs) != 1 {
				t.Fatalf("got %d records, want exactly the rejection", len(recs))
			}
			if recs[0].Level != slog.LevelWarn || recs[0].Message != "resample: rejected" {
				t.Fatalf("record = %v %q, want WARN \"resample: rejected\"", recs[0].Level, recs[0].Message)
			}
			got := attrs(recs[0])
			if got["scale"] != tt.scale.String() {
				t.Errorf("attr scale = %q, want %q", got["scale"], tt.scale.String())
			}
			if got["err"] == "" {
				t.Error("attr err missing")
			}
		})
	}
}

func TestSetLoggerNilSilencesResize(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)

	if Logger() == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if _, err := Resize(diagonal4x4(t), Factor(0.5), Bilinear); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	_, _ = Resize(diagonal4x4(t), Factor(-1), Bilinear)
	if buf.Len() != 0 {
		t.Errorf("silenced logger wrote %q", buf.String())
	}
}

// TestSetLoggerDuringResize swaps the logger while resizes run on worker
// pools; run with -race.
func TestSetLoggerDuringResize(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	in := randomRaster(t, 64, 48, RGB, 11)
	want, err := Resize(in, Factor(0.75), Bilinear)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	rec := &recorder{}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out, err := Resize(in, Factor(0.75), Bilinear, WithWorkers(4))
			if err != nil {
				t.Errorf("Resize failed: %v", err)
				return
			}
			if !bytes.Equal(out.Data(), want.Data()) {
				t.Error("output changed while the logger was swapped")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(rec))
			SetLogger(nil)
		}()
	}
	wg.Wait()

	for _, r := range rec.take() {
		if r.Message != "resample: resized" {
			t.Errorf("unexpected record %q", r.Message)
		}
	}
}

func BenchmarkResizeSilentLogger(b *testing.B) {
	in := randomRaster(b, 64, 64, Gray, 1)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Resize(in, Factor(0.5), Bilinear); err != nil {
			b.Fatal(err)
		}
	}
}
