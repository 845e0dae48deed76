package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/seqmv/internal/config"
)

func plainCfg() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := plainCfg()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := plainCfg()
	cfg.LogFile = filepath.Join(dir, "logs", "seqmv.log")
	var buf bytes.Buffer
	l, err := NewLoggerTo(&buf, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !strings.Contains(buf.String(), "to file") {
		t.Errorf("terminal output: %s", buf.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	cfg := plainCfg()
	var buf bytes.Buffer
	l, err := NewLoggerTo(&buf, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("info %d", 1)
	l.Success("renamed %d files", 3)
	l.Warn("dry run")
	l.Error("boom")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	out := buf.String()
	for _, want := range []string{"INFO", "info 1", "DONE", "renamed 3 files", "WARN", "dry run", "ERRO", "boom", "DEBU", "shown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug(false) was logged:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ColorNever output contains ANSI escapes:\n%s", out)
	}
}

func TestLogger_FileHasNoStyling(t *testing.T) {
	cfg := plainCfg()
	cfg.LogFile = filepath.Join(t.TempDir(), "seqmv.log")
	var buf bytes.Buffer
	l, err := NewLoggerTo(&buf, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Error("%s due to: %s", "\x1b[1;31mCould not select head\x1b[0m", "conflict")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("ERRO")) || !bytes.Contains(b, []byte("Could not select head due to: conflict")) {
		t.Errorf("log file content: %q", b)
	}
	if bytes.Contains(b, []byte("\x1b[")) {
		t.Errorf("log file contains ANSI escapes: %q", b)
	}
}
