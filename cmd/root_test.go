package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedCode   int
		expectedStdout string
		stderrContains []string
	}{
		{
			name:           "hex to decimal",
			args:           []string{"0x1A"},
			expectedCode:   0,
			expectedStdout: "26\n",
		},
		{
			name:           "decimal to hex",
			args:           []string{"26"},
			expectedCode:   0,
			expectedStdout: "0X1A\n",
		},
		{
			name:           "hex zero",
			args:           []string{"0x0"},
			expectedCode:   0,
			expectedStdout: "0\n",
		},
		{
			name:           "decimal zero",
			args:           []string{"0"},
			expectedCode:   0,
			expectedStdout: "0X0\n",
		},
		{
			name:           "lowercase hex digits",
			args:           []string{"0xff"},
			expectedCode:   0,
			expectedStdout: "255\n",
		},
		{
			name:           "negative number after separator",
			args:           []string{"--", "-5"},
			expectedCode:   1,
			stderrContains: []string{"Error: parsing error"},
		},
		{
			name:           "missing argument",
			args:           []string{},
			expectedCode:   1,
			stderrContains: []string{"Error: usage error", "Usage:", "h2i <number>"},
		},
		{
			name:           "too many arguments",
			args:           []string{"1", "2"},
			expectedCode:   1,
			stderrContains: []string{"Error: usage error", "Usage:"},
		},
		{
			name:           "unknown flag",
			args:           []string{"--upper", "26"},
			expectedCode:   1,
			stderrContains: []string{"Error: usage error", "unknown flag"},
		},
		{
			name:           "empty argument",
			args:           []string{""},
			expectedCode:   1,
			stderrContains: []string{"Error: parsing error", "empty input"},
		},
		{
			name:           "invalid hex digits",
			args:           []string{"0xZZ"},
			expectedCode:   1,
			stderrContains: []string{`Error: parsing error for "0xZZ"`},
		},
		{
			name:           "not a number",
			args:           []string{"abc"},
			expectedCode:   1,
			stderrContains: []string{`Error: parsing error for "abc"`},
		},
		{
			name:           "overflow",
			args:           []string{"18446744073709551616"},
			expectedCode:   1,
			stderrContains: []string{"Error: overflow error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			if code != tt.expectedCode {
				t.Errorf("expected exit code %d, got %d (stderr: %q)", tt.expectedCode, code, stderr.String())
			}
			if stdout.String() != tt.expectedStdout {
				t.Errorf("expected stdout %q, got %q", tt.expectedStdout, stdout.String())
			}
			for _, want := range tt.stderrContains {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("expected stderr to contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestRunParseErrorOmitsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"0xZZ"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("did not expect usage text for a parse error, got %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			if code := run([]string{flag}, &stdout, &stderr); code != 0 {
				t.Fatalf("expected exit code 0, got %d (stderr: %q)", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), "h2i version "+version) {
				t.Errorf("expected version output, got %q", stdout.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %q)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Either a hex number like 0x0A or a positive integer like 10") {
		t.Errorf("expected help to describe the number argument, got %q", stdout.String())
	}
}

func TestRunNilArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 for nil args, got %d", code)
	}
}
