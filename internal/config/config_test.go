package config

import (
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	if cfg.Admin.Email == "" {
		t.Error("Admin.Email should not be empty")
	}

	if cfg.Storage.Bucket == "" {
		t.Error("Storage.Bucket should not be empty")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "zero port",
			cfg:     Config{Webserver: Webserver{URL: "http://localhost"}, Admin: Admin{Email: "a@b.c"}},
			wantErr: true,
		},
		{
			name:    "empty url",
			cfg:     Config{Webserver: Webserver{Port: 8080}, Admin: Admin{Email: "a@b.c"}},
			wantErr: true,
		},
		{
			name:    "empty admin email",
			cfg:     Config{Webserver: Webserver{Port: 8080, URL: "http://localhost"}},
			wantErr: true,
		},
		{
			name:    "valid",
			cfg:     Config{Webserver: Webserver{Port: 8080, URL: "http://localhost"}, Admin: Admin{Email: "a@b.c"}},
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
