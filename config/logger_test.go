package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

func TestLoggingConfig_Prepare_File(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: filepath.Join(dir, "test.log"), Mode: "overwrite"},
	}
	t.Cleanup(func() { debug.SetCrashOutput(nil, debug.CrashOptions{}) })

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden debug message")
	log.Info("visible info message")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "visible info message") {
		t.Errorf("info message missing from log:\n%s", data)
	}
	if strings.Contains(string(data), "hidden debug message") {
		t.Errorf("debug message must be filtered out:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "logicss-panic.log")); err != nil {
		t.Errorf("panic log was not prepared: %v", err)
	}
}

func TestLoggingConfig_Prepare_ReportForcesDebug(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "test.log"), Mode: "append"},
	}
	t.Cleanup(func() { debug.SetCrashOutput(nil, debug.CrashOptions{}) })

	rpt := &Report{entries: make(map[string]entry)}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("debug message for report")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "debug message for report") {
		t.Errorf("debug message missing from log:\n%s", data)
	}
	if _, ok := rpt.entries["final.log"]; !ok {
		t.Error("log file is not stored in the report")
	}
}

func TestLoggingConfig_Prepare_Disabled(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Error("goes nowhere")
}
