package main

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scriptwatch/exporter.git/internal/customerrors"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name         string
		setup        func()
		wantErr      error
		wantScript   string
		wantPort     int
		wantInterval time.Duration
	}{
		{
			name: "script missing",
			setup: func() {
				os.Unsetenv("SCRIPT")
				os.Args = []string{"cmd"}
				flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
			},
			wantErr: customerrors.ErrScriptRequired,
		},
		{
			name: "env script with defaults",
			setup: func() {
				os.Setenv("SCRIPT", "/opt/check.sh")
				os.Args = []string{"cmd"}
				flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
			},
			wantScript:   "/opt/check.sh",
			wantPort:     8000,
			wantInterval: 5 * time.Second,
		},
		{
			name: "flags override env",
			setup: func() {
				os.Setenv("SCRIPT", "/opt/check.sh")
				os.Args = []string{"cmd", "-script=/opt/other.sh", "-port=9100", "-interval=30"}
				flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
			},
			wantScript:   "/opt/other.sh",
			wantPort:     9100,
			wantInterval: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			oldEnv, hadEnv := os.LookupEnv("SCRIPT")
			oldFlags := flag.CommandLine

			defer func() {
				os.Args = oldArgs
				if hadEnv {
					os.Setenv("SCRIPT", oldEnv)
				} else {
					os.Unsetenv("SCRIPT")
				}
				flag.CommandLine = oldFlags
			}()

			tt.setup()

			config, err := loadConfig()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantScript, config.Script)
			require.Equal(t, tt.wantPort, config.Port)
			require.Equal(t, tt.wantInterval, config.ScrapeInterval)
		})
	}
}
