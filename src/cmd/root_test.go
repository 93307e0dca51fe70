package cmd

import (
	"testing"

	"github.com/spf13/viper"
)

// Tests for connection setting resolution: flag > env > config > default

func TestResolveServerURLDefault(t *testing.T) {
	viper.Reset()
	server = ""
	t.Setenv("MEM_API_URL", "")

	if got := resolveServerURL(); got != defaultAPIURL {
		t.Errorf("resolveServerURL() = %q, want default %q", got, defaultAPIURL)
	}
}

func TestResolveServerURLFromConfig(t *testing.T) {
	viper.Reset()
	server = ""
	t.Setenv("MEM_API_URL", "")
	viper.Set("server.url", "http://config.example.com")

	if got := resolveServerURL(); got != "http://config.example.com" {
		t.Errorf("resolveServerURL() = %q", got)
	}
}

func TestResolveServerURLEnvBeatsConfig(t *testing.T) {
	viper.Reset()
	server = ""
	viper.Set("server.url", "http://config.example.com")
	t.Setenv("MEM_API_URL", "http://env.example.com")

	if got := resolveServerURL(); got != "http://env.example.com" {
		t.Errorf("resolveServerURL() = %q, want env value", got)
	}
}

func TestResolveServerURLFlagBeatsEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("MEM_API_URL", "http://env.example.com")
	server = "http://flag.example.com"
	defer func() { server = "" }()

	if got := resolveServerURL(); got != "http://flag.example.com" {
		t.Errorf("resolveServerURL() = %q, want flag value", got)
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	viper.Reset()
	token = ""
	viper.Set("server.token", "config-token")
	t.Setenv("MEM_AUTH_TOKEN", "")

	if got := resolveToken(); got != "config-token" {
		t.Errorf("resolveToken() = %q, want config value", got)
	}

	t.Setenv("MEM_AUTH_TOKEN", "  env-token  ")
	if got := resolveToken(); got != "env-token" {
		t.Errorf("resolveToken() = %q, want trimmed env value", got)
	}

	token = "flag-token"
	defer func() { token = "" }()
	if got := resolveToken(); got != "flag-token" {
		t.Errorf("resolveToken() = %q, want flag value", got)
	}
}

func TestResolveTokenEmpty(t *testing.T) {
	viper.Reset()
	token = ""
	t.Setenv("MEM_AUTH_TOKEN", "")

	if got := resolveToken(); got != "" {
		t.Errorf("resolveToken() = %q, want empty", got)
	}
}

func TestResolveTimeout(t *testing.T) {
	viper.Reset()
	timeout = 0
	t.Setenv("MEM_TIMEOUT", "")

	if got := resolveTimeout(); got != 30 {
		t.Errorf("resolveTimeout() = %d, want default 30", got)
	}

	viper.Set("server.timeout", 45)
	if got := resolveTimeout(); got != 45 {
		t.Errorf("resolveTimeout() = %d, want config 45", got)
	}

	t.Setenv("MEM_TIMEOUT", "60")
	if got := resolveTimeout(); got != 60 {
		t.Errorf("resolveTimeout() = %d, want env 60", got)
	}

	t.Setenv("MEM_TIMEOUT", "not-a-number")
	if got := resolveTimeout(); got != 45 {
		t.Errorf("resolveTimeout() = %d, bad env should fall through", got)
	}

	timeout = 5
	defer func() { timeout = 0 }()
	if got := resolveTimeout(); got != 5 {
		t.Errorf("resolveTimeout() = %d, want flag 5", got)
	}
}

// Tests for auth requirements

func TestRequiresAuth(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"search", true},
		{"expand", true},
		{"threads", true},
		{"tui", true},
		{"diagnose", false},
		{"version", false},
		{"config", false},
	}
	for _, tt := range tests {
		if got := requiresAuth(tt.command); got != tt.want {
			t.Errorf("requiresAuth(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestGetOutputFormat(t *testing.T) {
	viper.Reset()
	output = ""
	viper.Set("output.format", "json")
	if got := getOutputFormat(); got != "json" {
		t.Errorf("getOutputFormat() = %q, want config value", got)
	}

	output = "text"
	defer func() { output = "" }()
	if got := getOutputFormat(); got != "text" {
		t.Errorf("getOutputFormat() = %q, want flag value", got)
	}
}
