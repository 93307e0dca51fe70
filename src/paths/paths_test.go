package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Tests for ConfigDir

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir() returned empty string")
	}
	if !strings.Contains(dir, projectOrg) {
		t.Errorf("ConfigDir() = %q, should contain %q", dir, projectOrg)
	}
	if !strings.Contains(dir, projectName) {
		t.Errorf("ConfigDir() = %q, should contain %q", dir, projectName)
	}
}

func TestConfigDirPlatformSpecific(t *testing.T) {
	dir := ConfigDir()

	if runtime.GOOS == "windows" {
		appdata := os.Getenv("APPDATA")
		if appdata != "" && !strings.HasPrefix(dir, appdata) {
			t.Errorf("ConfigDir() on Windows should use APPDATA, got %q", dir)
		}
	} else {
		if !strings.Contains(dir, ".config") {
			t.Errorf("ConfigDir() on %s should use .config, got %q", runtime.GOOS, dir)
		}
	}
}

// Tests for LogDir

func TestLogDir(t *testing.T) {
	dir := LogDir()

	if dir == "" {
		t.Error("LogDir() returned empty string")
	}
	if !strings.Contains(dir, projectOrg) || !strings.Contains(dir, projectName) {
		t.Errorf("LogDir() = %q, should contain org and project", dir)
	}
}

// Tests for file paths

func TestConfigFile(t *testing.T) {
	file := ConfigFile()

	if filepath.Base(file) != "cli.yml" {
		t.Errorf("ConfigFile() = %q, should end in cli.yml", file)
	}
	if filepath.Dir(file) != ConfigDir() {
		t.Errorf("ConfigFile() should live in ConfigDir()")
	}
}

func TestLogFile(t *testing.T) {
	file := LogFile()

	if filepath.Base(file) != "cli.log" {
		t.Errorf("LogFile() = %q, should end in cli.log", file)
	}
	if filepath.Dir(file) != LogDir() {
		t.Errorf("LogFile() should live in LogDir()")
	}
}

// Tests for EnsureFile

func TestEnsureFileCreatesParents(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "file.log")

	if err := EnsureFile(target); err != nil {
		t.Fatalf("EnsureFile() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(target))
	if err != nil {
		t.Fatalf("parent dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("parent path is not a directory")
	}
}
