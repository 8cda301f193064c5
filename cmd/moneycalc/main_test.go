package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCalc(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-env", ""}, args...)
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	config := writeFile(t, "moneycalc.toml", `
Separator = ","

[Rates]
"USD/BRL" = "5.10"
"EUR/USD" = "1.25"
`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "BRL", "5.00", "5.000"}, "BRL 10.000\n"},
		{"sub", []string{"sub", "BRL", "6.00", "5.00"}, "BRL 1.00\n"},
		{"sub negative", []string{"sub", "BRL", "5.00", "6.00"}, "BRL -1.00\n"},
		{"mul", []string{"mul", "BRL", "299.99", "1.5"}, "BRL 449.985\n"},
		{"mul trims", []string{"mul", "BRL", "20.00", "0.5"}, "BRL 10.00\n"},
		{"mul round", []string{"-round", "mul", "BRL", "299.99", "1.5"}, "BRL 449.98\n"},
		{"fmt", []string{"fmt", "BRL", "29999"}, "BRL 299.99\n"},
		{"fmt precision", []string{"fmt", "OMR", "5", "3"}, "OMR 0.005\n"},
		{"fmt no minor units", []string{"fmt", "JPY", "1500", "0"}, "JPY 1500\n"},
		{"fmt separator", []string{"-config", config, "fmt", "BRL", "29999"}, "BRL 299,99\n"},
		{"add separator", []string{"-config", config, "add", "BRL", "5,00", "5,000"}, "BRL 10,000\n"},
		{"conv", []string{"-config", config, "conv", "USD", "BRL", "10,00"}, "BRL 51,00\n"},
		{"conv inverse", []string{"-config", config, "conv", "USD", "EUR", "10,00"}, "EUR 8,00\n"},
		{"conv identity", []string{"-config", config, "conv", "BRL", "BRL", "1,234"}, "BRL 1,234\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCalc(t, tt.args...)
			require.Equal(t, 0, code, "stderr: %s", stderr)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"no command", nil, 2, "usage"},
		{"unknown command", []string{"div", "BRL", "1", "2"}, 2, `unknown command "div"`},
		{"missing operand", []string{"add", "BRL", "1.00"}, 2, "usage"},
		{"bad flag", []string{"-nope"}, 2, "flag provided but not defined"},
		{"bad currency", []string{"add", "UUU", "1", "2"}, 1, "invalid currency"},
		{"bad amount", []string{"add", "BRL", "1,00", "2"}, 1, "invalid amount"},
		{"bad multiplier", []string{"mul", "BRL", "1.00", "+2"}, 1, "invalid multiplier"},
		{"negative fmt", []string{"fmt", "BRL", "-1"}, 1, "invalid amount"},
		{"negative precision", []string{"fmt", "BRL", "1", "-1"}, 1, "invalid precision"},
		{"missing rate", []string{"conv", "USD", "JPY", "1.00"}, 1, "exchange rate not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCalc(t, tt.args...)
			require.Equal(t, tt.wantCode, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestRunEnvOverrides(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("MONEYCALC_SEPARATOR", ",")
		code, stdout, stderr := runCalc(t, "add", "BRL", "5,00", "5,000")
		require.Equal(t, 0, code, "stderr: %s", stderr)
		require.Equal(t, "BRL 10,000\n", stdout)
	})

	t.Run("env file", func(t *testing.T) {
		t.Setenv("MONEYCALC_SEPARATOR", "")
		env := writeFile(t, ".env", "MONEYCALC_SEPARATOR=';'\nMONEYCALC_PRECISION=3\n")
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"-env", env, "fmt", "OMR", "1500"}, &stdout, &stderr)
		require.Equal(t, 0, code, "stderr: %s", stderr.String())
		require.Equal(t, "OMR 1;500\n", stdout.String())
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("MONEYCALC_LOG_LEVEL", "debug")
		code, _, stderr := runCalc(t, "fmt", "BRL", "1")
		require.Equal(t, 0, code)
		require.Contains(t, stderr, "config loaded")
	})
}
