package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const TEST_COMMAND_TIMEOUT = 10 * time.Second

type harness struct {
	t       *testing.T
	cliPath string
	env     []string
	home    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	binDir := os.Getenv("DATEFORMATTERS_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "dateformatters")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it with: go build -o bin/ ./cmd/dateformatters", cliPath)
	}

	// Isolate HOME and locale so results do not depend on the machine
	home := t.TempDir()
	var env []string
	for _, e := range os.Environ() {
		switch {
		case strings.HasPrefix(e, "HOME="),
			strings.HasPrefix(e, "LANG="),
			strings.HasPrefix(e, "LC_ALL="),
			strings.HasPrefix(e, "LC_TIME="),
			strings.HasPrefix(e, "DATEFORMATTERS_"):
			continue
		}
		env = append(env, e)
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", home),
		"LANG=en_US.UTF-8",
		fmt.Sprintf("DATEFORMATTERS_CONFIG=%s", filepath.Join(home, "config.yaml")),
	)

	return &harness{t: t, cliPath: cliPath, env: env, home: home}
}

func (h *harness) run(args ...string) (string, int) {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TEST_COMMAND_TIMEOUT)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.cliPath, args...)
	cmd.Env = h.env
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return strings.TrimSpace(string(out)), 0
	case errors.As(err, &exitErr):
		return strings.TrimSpace(string(out)), exitErr.ExitCode()
	}
	h.t.Fatalf("Command %s %v failed to run: %v\nOutput: %s", h.cliPath, args, err, out)
	return "", -1
}

func TestFormatScenarios(t *testing.T) {
	h := newHarness(t)
	const date = "2024-01-15T13:30:00Z"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short date", []string{"format", "--date", date, "--time-style", "none", "--locale", "en_US"}, "1/15/24"},
		{"custom pattern", []string{"format", "--date", date, "-p", "yyyy-MM-dd", "--locale", "en_US"}, "2024-01-15"},
		{"pm symbol", []string{"format", "--date", date, "--date-style", "none", "--pm", "PM", "--locale", "en_US"}, "1:30 PM"},
		{"system locale from LANG", []string{"format", "--date", date}, "1/15/24, 1:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := h.run(tt.args...)
			if code != 0 {
				t.Fatalf("exit code %d, output: %s", code, out)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConfigFileDefaults(t *testing.T) {
	h := newHarness(t)
	config := "locale: de_DE\ntimezone: UTC\ndate_style: long\ntime_style: none\n"
	if err := os.WriteFile(filepath.Join(h.home, "config.yaml"), []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, code := h.run("format", "--date", "2024-01-15 13:30")
	if code != 0 {
		t.Fatalf("exit code %d, output: %s", code, out)
	}
	if out != "15. Januar 2024" {
		t.Errorf("output = %q, want %q", out, "15. Januar 2024")
	}
}

func TestUnknownLocaleIsLoggedNotFatal(t *testing.T) {
	h := newHarness(t)

	out, code := h.run("format", "--date", "2024-01-15T13:30:00Z", "--locale", "zz_NOPE!")
	if code != 0 {
		t.Fatalf("exit code %d, output: %s", code, out)
	}
	if out != "1/15/24, 1:30 PM" {
		t.Errorf("output = %q, want the default locale rendering", out)
	}

	logData, err := os.ReadFile(filepath.Join(h.home, "logs", "dateformatters.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(logData), "zz_NOPE!") {
		t.Errorf("log file does not mention the bad locale:\n%s", logData)
	}
}

func TestInvalidInputExitsWithError(t *testing.T) {
	h := newHarness(t)

	out, code := h.run("format", "--date", "not-a-date")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(out, "Error: ") {
		t.Errorf("output = %q, want an Error: prefix", out)
	}
}
