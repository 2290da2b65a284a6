package config

import (
	"strings"
	"testing"
	"time"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadShopConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    ShopConfig
		wantErr string
	}{
		{
			name: "defaults derived from front office url",
			env: map[string]string{
				"URL_FO":    "http://localhost:8001",
				"BO_LOGIN":  "demo@prestashop.com",
				"BO_PASSWD": "secret",
			},
			want: ShopConfig{
				FrontOfficeURL: "http://localhost:8001/",
				BackOfficeURL:  "http://localhost:8001/admin-dev/",
				APIURL:         "http://localhost:8001/admin-api/",
				ShopName:       "PrestaShop",
				AdminEmail:     "demo@prestashop.com",
				AdminPassword:  "secret",
			},
		},
		{
			name: "explicit values",
			env: map[string]string{
				"URL_FO":    "https://shop.test/",
				"URL_BO":    "https://shop.test/admin123",
				"URL_API":   "https://api.shop.test/",
				"SHOP_NAME": "TestShop",
				"BO_LOGIN":  "admin@shop.test",
				"BO_PASSWD": "secret",
			},
			want: ShopConfig{
				FrontOfficeURL: "https://shop.test/",
				BackOfficeURL:  "https://shop.test/admin123/",
				APIURL:         "https://api.shop.test/",
				ShopName:       "TestShop",
				AdminEmail:     "admin@shop.test",
				AdminPassword:  "secret",
			},
		},
		{
			name:    "missing front office url",
			env:     map[string]string{"BO_LOGIN": "a", "BO_PASSWD": "b"},
			wantErr: "URL_FO is required",
		},
		{
			name:    "missing login",
			env:     map[string]string{"URL_FO": "http://localhost", "BO_PASSWD": "b"},
			wantErr: "BO_LOGIN is required",
		},
		{
			name:    "missing password",
			env:     map[string]string{"URL_FO": "http://localhost", "BO_LOGIN": "a"},
			wantErr: "BO_PASSWD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadShopConfig(env(tt.env))

			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("LoadShopConfig() error = %v, want %q", err, tt.wantErr)
				}
				if got != nil {
					t.Error("Expected config to be nil when error occurs")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadShopConfig() unexpected error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("LoadShopConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadBrowserConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got, err := LoadBrowserConfig(env(nil))
		if err != nil {
			t.Fatalf("LoadBrowserConfig() unexpected error = %v", err)
		}
		if got.Name != Chromium || !got.Headless || got.Locale != "en-GB" {
			t.Errorf("unexpected defaults: %+v", got)
		}
		if got.ActionTimeout != 10*time.Second || got.NavigationTimeout != 30*time.Second {
			t.Errorf("unexpected default timeouts: %+v", got)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		got, err := LoadBrowserConfig(env(map[string]string{
			"BROWSER":             "firefox",
			"HEADLESS":            "false",
			"SLOW_MO":             "250",
			"BROWSER_LANG":        "fr-FR",
			"IGNORE_HTTPS_ERRORS": "true",
			"ACTION_TIMEOUT":      "5s",
			"NAVIGATION_TIMEOUT":  "1m",
		}))
		if err != nil {
			t.Fatalf("LoadBrowserConfig() unexpected error = %v", err)
		}
		if got.Name != Firefox || got.Headless || got.Locale != "fr-FR" || !got.IgnoreHTTPSErrors {
			t.Errorf("unexpected config: %+v", got)
		}
		if got.SlowMo != 250*time.Millisecond {
			t.Errorf("SlowMo = %v", got.SlowMo)
		}
		if got.ActionTimeout != 5*time.Second || got.NavigationTimeout != time.Minute {
			t.Errorf("unexpected timeouts: %+v", got)
		}
	})

	invalid := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown browser", env: map[string]string{"BROWSER": "lynx"}, want: "BROWSER"},
		{name: "headless not boolean", env: map[string]string{"HEADLESS": "maybe"}, want: "HEADLESS"},
		{name: "negative slow mo", env: map[string]string{"SLOW_MO": "-5"}, want: "SLOW_MO"},
		{name: "bad timeout", env: map[string]string{"ACTION_TIMEOUT": "soon"}, want: "ACTION_TIMEOUT"},
		{name: "zero timeout", env: map[string]string{"NAVIGATION_TIMEOUT": "0s"}, want: "NAVIGATION_TIMEOUT"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBrowserConfig(env(tt.env))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadBrowserConfig() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	full := map[string]string{
		"POSTGRES_USER":     "shop",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "results",
		"POSTGRES_HOSTNAME": "db",
	}

	got, err := LoadPostgresConfig(env(full))
	if err != nil {
		t.Fatalf("LoadPostgresConfig() unexpected error = %v", err)
	}
	want := "host=db port=5432 user=shop password=secret dbname=results sslmode=disable"
	if got.ConnectionString() != want {
		t.Errorf("ConnectionString() = %s, want %s", got.ConnectionString(), want)
	}

	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOSTNAME"} {
		t.Run("missing "+key, func(t *testing.T) {
			partial := make(map[string]string)
			for k, v := range full {
				if k != key {
					partial[k] = v
				}
			}
			_, err := LoadPostgresConfig(env(partial))
			if err == nil || err.Error() != key+" is required" {
				t.Errorf("LoadPostgresConfig() error = %v", err)
			}
		})
	}
}

func TestLoadPostgresConfigOptional(t *testing.T) {
	base := map[string]string{
		"POSTGRES_USER":     "shop",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "results",
		"POSTGRES_HOSTNAME": "db",
	}

	tests := []struct {
		name     string
		extra    map[string]string
		wantConn string
		wantMax  int
		wantErr  string
	}{
		{
			name:     "defaults",
			wantConn: "host=db port=5432 user=shop password=secret dbname=results sslmode=disable",
			wantMax:  DefaultPostgresMaxConns,
		},
		{
			name:     "custom port ssl and pool",
			extra:    map[string]string{"POSTGRES_PORT": "6543", "POSTGRES_SSLMODE": "verify-full", "POSTGRES_MAX_CONNS": "3"},
			wantConn: "host=db port=6543 user=shop password=secret dbname=results sslmode=verify-full",
			wantMax:  3,
		},
		{
			name:    "port not a number",
			extra:   map[string]string{"POSTGRES_PORT": "pg"},
			wantErr: `POSTGRES_PORT must be a port number, got "pg"`,
		},
		{
			name:    "port out of range",
			extra:   map[string]string{"POSTGRES_PORT": "70000"},
			wantErr: `POSTGRES_PORT must be a port number, got "70000"`,
		},
		{
			name:    "unknown ssl mode",
			extra:   map[string]string{"POSTGRES_SSLMODE": "on"},
			wantErr: `POSTGRES_SSLMODE "on" is not a libpq sslmode`,
		},
		{
			name:    "empty pool",
			extra:   map[string]string{"POSTGRES_MAX_CONNS": "0"},
			wantErr: `POSTGRES_MAX_CONNS must be a positive integer, got "0"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make(map[string]string)
			for k, v := range base {
				values[k] = v
			}
			for k, v := range tt.extra {
				values[k] = v
			}

			got, err := LoadPostgresConfig(env(values))
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Errorf("LoadPostgresConfig() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadPostgresConfig() unexpected error = %v", err)
			}
			if got.ConnectionString() != tt.wantConn {
				t.Errorf("ConnectionString() = %s, want %s", got.ConnectionString(), tt.wantConn)
			}
			if got.MaxConns != tt.wantMax {
				t.Errorf("MaxConns = %d, want %d", got.MaxConns, tt.wantMax)
			}
		})
	}
}

func TestPostgresConfig_SearchPathConnectionString(t *testing.T) {
	c := &PostgresConfig{User: "u", Password: "p", Database: "d", Host: "h", Port: 5432, SSLMode: "disable"}
	want := "host=h port=5432 user=u password=p dbname=d sslmode=disable search_path=test_abc"
	if got := c.SearchPathConnectionString("test_abc"); got != want {
		t.Errorf("SearchPathConnectionString() = %s, want %s", got, want)
	}
}
