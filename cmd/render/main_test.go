package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rgdevment/opinion-brief/internal/config"
	"github.com/rgdevment/opinion-brief/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{Location: time.UTC, LogLevel: "info"}
}

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incident.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunWritesText(t *testing.T) {
	input := writeInput(t, `{"date":"2025-03-07","time":"09:08:22","author":"张三","content":"测试内容","region":"湖滨区"}`)
	out := filepath.Join(t.TempDir(), "brief.txt")

	err := run(context.Background(), testConfig(), zap.NewNop(), []string{"-input", input, "-out", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "舆情快报\n"))
	assert.Contains(t, string(data), "2025年03月07日09:08:22")
}

func TestRunErrors(t *testing.T) {
	badTime := writeInput(t, `{"time":"9:08","author":"张三","content":"测试内容"}`)

	err := run(context.Background(), testConfig(), zap.NewNop(), nil)
	assert.Error(t, err, "input flag is required")

	err = run(context.Background(), testConfig(), zap.NewNop(), []string{"-input", writeInput(t, "{")})
	assert.Error(t, err)

	err = run(context.Background(), testConfig(), zap.NewNop(), []string{"-input", badTime, "-out", filepath.Join(t.TempDir(), "x.txt")})
	assert.ErrorIs(t, err, service.ErrInvalidEventTime)
}
