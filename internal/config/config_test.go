package config

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Setenv("JWT_SECRET_KEY", "this_is_a_test_secret_key_with_32_chars_minimum")
	os.Setenv("ADMIN_PASSWORD", "test_password")
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET_KEY")
		os.Unsetenv("ADMIN_PASSWORD")
	})
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want %q", cfg.AdminUsername, "admin")
	}
	if cfg.StorageDriver != "memory" {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, "memory")
	}
	if cfg.EggPrice != 5.00 {
		t.Errorf("EggPrice = %v, want 5.00", cfg.EggPrice)
	}
	if cfg.FeedCostPerKg != 40.00 {
		t.Errorf("FeedCostPerKg = %v, want 40.00", cfg.FeedCostPerKg)
	}
	if cfg.OTPLength != 6 || cfg.OTPExpiryMinutes != 10 || cfg.OTPMaxAttempts != 3 {
		t.Errorf("OTP policy = (%d, %d, %d), want (6, 10, 3)",
			cfg.OTPLength, cfg.OTPExpiryMinutes, cfg.OTPMaxAttempts)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv("EGG_PRICE", "0.50")
	os.Setenv("FEED_COST_PER_KG", "2.00")
	defer func() {
		os.Unsetenv("EGG_PRICE")
		os.Unsetenv("FEED_COST_PER_KG")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.EggPrice != 0.50 {
		t.Errorf("EggPrice = %v, want 0.50", cfg.EggPrice)
	}
	if cfg.FeedCostPerKg != 2.00 {
		t.Errorf("FeedCostPerKg = %v, want 2.00", cfg.FeedCostPerKg)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing JWT_SECRET_KEY",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "password",
			},
		},
		{
			name: "Short JWT_SECRET_KEY",
			envVars: map[string]string{
				"JWT_SECRET_KEY": "too_short",
				"ADMIN_PASSWORD": "password",
			},
		},
		{
			name: "Missing ADMIN_PASSWORD",
			envVars: map[string]string{
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Postgres without DB_PASSWORD",
			envVars: map[string]string{
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
				"ADMIN_PASSWORD": "password",
				"STORAGE_DRIVER": "postgres",
			},
		},
		{
			name: "Unknown storage driver",
			envVars: map[string]string{
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
				"ADMIN_PASSWORD": "password",
				"STORAGE_DRIVER": "frisbee",
			},
		},
	}

	allKeys := []string{"JWT_SECRET_KEY", "ADMIN_PASSWORD", "STORAGE_DRIVER", "DB_PASSWORD"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range allKeys {
				os.Unsetenv(key)
			}
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer func() {
				for _, key := range allKeys {
					os.Unsetenv(key)
				}
			}()

			if _, err := LoadConfig(); err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}
