package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jparise/humantime/internal/timeparse"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:    "auto",
			value:   "auto",
			wantErr: false,
			want:    colorAuto,
		},
		{
			name:    "always",
			value:   "always",
			wantErr: false,
			want:    colorAlways,
		},
		{
			name:    "never",
			value:   "never",
			wantErr: false,
			want:    colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}

			// Test String() method
			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}

			// Test Type() method
			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}

func TestDurationValue(t *testing.T) {
	var v durationValue
	if v.String() != "" {
		t.Errorf("durationValue.String() unset = %q, want empty", v.String())
	}

	if err := v.Set("1h 30m"); err != nil {
		t.Fatalf("durationValue.Set() unexpected error: %v", err)
	}
	if v.d == nil || *v.d != timeparse.New(5400, 0) {
		t.Errorf("durationValue.Set(\"1h 30m\") = %v, want 1h 30m", v.d)
	}
	if v.String() != "1h 30m" {
		t.Errorf("durationValue.String() = %q, want %q", v.String(), "1h 30m")
	}

	if err := v.Set("5x"); err == nil {
		t.Error("durationValue.Set(\"5x\") expected error, got nil")
	}
	if v.Type() != "duration" {
		t.Errorf("durationValue.Type() = %q, want %q", v.Type(), "duration")
	}
}

// execute runs a fresh root command with an isolated config directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantStdout string
		wantStderr string
		wantErr    string
	}{
		{
			name:       "parse text",
			args:       []string{"parse", "--color", "never", "2h 15m", "1.5days"},
			wantStdout: "2h 15m\n1day 12h\n",
		},
		{
			name:       "parse month and minute",
			args:       []string{"parse", "--color", "never", "5M", "5m"},
			wantStdout: "5months\n5m\n",
		},
		{
			name:       "parse seconds",
			args:       []string{"parse", "--color", "never", "-o", "seconds", "20min 17nsec"},
			wantStdout: "1200.000000017\n",
		},
		{
			name:       "parse go",
			args:       []string{"parse", "--color", "never", "--output", "go", "1h 30m"},
			wantStdout: "1h30m0s\n",
		},
		{
			name:       "parse sum",
			args:       []string{"parse", "--color", "never", "--sum", "1h", "30m", "45m"},
			wantStdout: "2h 15m\n",
		},
		{
			name:       "parse show input",
			args:       []string{"parse", "--color", "never", "-I", "90m"},
			wantStdout: "90m: 1h 30m\n",
		},
		{
			name:       "parse stdin",
			args:       []string{"parse", "--color", "never"},
			stdin:      "5m\n5M\n",
			wantStdout: "5m\n5months\n",
		},
		{
			name:       "parse failure",
			args:       []string{"parse", "--color", "never", "5s", "5x"},
			wantStdout: "5s\n",
			wantStderr: `Warning: "5x": parse error: invalid unit at "x"`,
			wantErr:    "failed to convert 1 of 2 inputs",
		},
		{
			name:       "parse max",
			args:       []string{"parse", "--color", "never", "--max", "1h", "30m", "2h"},
			wantStdout: "30m\n",
			wantStderr: "duration 2h exceeds the maximum 1h",
			wantErr:    "failed to convert 1 of 2 inputs",
		},
		{
			name:    "invalid max flag",
			args:    []string{"parse", "--max", "forever", "1h"},
			wantErr: "invalid argument",
		},
		{
			name:    "min above max",
			args:    []string{"parse", "--min", "2h", "--max", "1h", "1h"},
			wantErr: "--min 2h cannot be greater than --max 1h",
		},
		{
			name:    "jobs out of range",
			args:    []string{"parse", "--jobs", "0", "1h"},
			wantErr: "--jobs must be between 1 and 100",
		},
		{
			name:    "invalid color",
			args:    []string{"parse", "--color", "rainbow", "1h"},
			wantErr: "invalid argument",
		},
		{
			name:       "format",
			args:       []string{"format", "--color", "never", "9420", "0.032", "0"},
			wantStdout: "2h 37m\n32ms\n0s\n",
		},
		{
			name:       "format sum",
			args:       []string{"format", "--color", "never", "--sum", "60", "0.5"},
			wantStdout: "1m 500ms\n",
		},
		{
			name:       "between",
			args:       []string{"between", "--color", "never", "2018-10-27", "2018-10-28T01:30:00Z"},
			wantStdout: "1day 1h 30m\n",
		},
		{
			name:    "between wrong arg count",
			args:    []string{"between", "2018-10-27"},
			wantErr: "accepts 2 arg(s)",
		},
		{
			name:    "missing explicit config",
			args:    []string{"--config", "/nonexistent/humantime.yaml", "parse", "1h"},
			wantErr: "failed to read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.stdin, tt.args...)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Execute(%q) error = %v, want containing %q", tt.args, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Execute(%q) unexpected error: %v", tt.args, err)
			}

			if stdout != tt.wantStdout {
				t.Errorf("Execute(%q) stdout = %q, want %q", tt.args, stdout, tt.wantStdout)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("Execute(%q) stderr = %q, want containing %q", tt.args, stderr, tt.wantStderr)
			}
		})
	}
}

func TestExecuteColor(t *testing.T) {
	stdout, _, err := execute(t, "", "parse", "--color", "always", "1h")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "\x1b[") || !strings.Contains(stdout, "1h") {
		t.Errorf("Execute() stdout = %q, want colored 1h", stdout)
	}
}

func TestExecuteFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "timeouts.durations", "# per request\n30s\n")
	writeFile(t, filepath.Join(dir, "nested"), "retention.durations", "1y 6M\n")

	stdout, _, err := execute(t, "", "parse", "--color", "never", "-o", "seconds",
		"-f", filepath.Join(dir, "**", "*.durations"))
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	got := strings.Fields(stdout)
	slices.Sort(got)
	want := []string{"30", "47337696"}
	if !slices.Equal(got, want) {
		t.Errorf("Execute() outputs = %q, want %q", got, want)
	}
}

func TestExecuteConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
color: never
output: seconds
show_input: true
max: 1y
`)

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
		wantErr    bool
	}{
		{
			name:       "config defaults",
			args:       []string{"parse", "1h"},
			wantStdout: "1h: 3600\n",
		},
		{
			name:       "flags override config",
			args:       []string{"parse", "-o", "text", "--max", "2y", "18M"},
			wantStdout: "18M: 1year 6months 43m 12s\n",
		},
		{
			name:       "config max applies",
			args:       []string{"parse", "2y"},
			wantStderr: "duration 2years exceeds the maximum 1year",
			wantErr:    true,
		},
		{
			name:       "effective config",
			args:       []string{"config"},
			wantStdout: "color: never\njobs: 10\noutput: seconds\nshow_input: true\nmax: 1year\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "", append([]string{"--config", path}, tt.args...)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if stdout != tt.wantStdout {
				t.Errorf("Execute(%q) stdout = %q, want %q", tt.args, stdout, tt.wantStdout)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("Execute(%q) stderr = %q, want containing %q", tt.args, stderr, tt.wantStderr)
			}
		})
	}
}

func TestExecuteDefaultConfig(t *testing.T) {
	configHome := t.TempDir()
	if err := os.MkdirAll(filepath.Join(configHome, "humantime"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(configHome, "humantime"), "config.yaml", "color: never\noutput: go\n")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"parse", "90s"})
	t.Setenv("XDG_CONFIG_HOME", configHome)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got := stdout.String(); got != "1m30s\n" {
		t.Errorf("Execute() stdout = %q, want %q", got, "1m30s\n")
	}
}
