package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "algolab", configBaseName)
	assert.Equal(t, "algolab.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "run.speed_ms", speedConfigKey)
	assert.Equal(t, "run.size", sizeConfigKey)
	assert.Equal(t, "run.array_type", arrayTypeConfigKey)
	assert.Equal(t, "practice.timeout", practiceTimeoutConfigKey)
	assert.Equal(t, 500, defaultSpeedMs)
	assert.Equal(t, 20, defaultSize)
	assert.Equal(t, 8, defaultGraphNodes)
	assert.Equal(t, "ALGOLAB", envPrefix)
	assert.Equal(t, ".algolab.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, 2*time.Second, viper.GetDuration(practiceTimeoutConfigKey))
	assert.Equal(t, "sort", viper.GetString(practiceKindConfigKey))
	assert.Equal(t, "random", viper.GetString(graphShapeConfigKey))
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"blank", "   ", nil, false},
		{"single", "7", []int{7}, false},
		{"spaced", "5, 3 ,8", []int{5, 3, 8}, false},
		{"negative", "-1,2", []int{-1, 2}, false},
		{"invalid", "5,x", nil, true},
		{"trailing comma", "5,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInts(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
