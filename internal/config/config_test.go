package config

import "testing"

func TestLoadDBConfig_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/halls.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := LoadDBConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != DriverSQLite || cfg.SQLitePath != "/tmp/halls.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxOpenConns != 10 {
		t.Fatalf("bad int must fall back to default, got %d", cfg.MaxOpenConns)
	}
}

func TestDBConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		cfg  DBConfig
		ok   bool
	}{
		{"postgres ok", DBConfig{Driver: DriverPostgres, Host: "db", User: "u", Name: "n"}, true},
		{"postgres no host", DBConfig{Driver: DriverPostgres, User: "u", Name: "n"}, false},
		{"sqlite ok", DBConfig{Driver: DriverSQLite, SQLitePath: ":memory:"}, true},
		{"sqlite no path", DBConfig{Driver: DriverSQLite}, false},
		{"unknown driver", DBConfig{Driver: "mysql"}, false},
	}
	for _, c := range cases {
		err := c.cfg.Validate()
		if (err == nil) != c.ok {
			t.Fatalf("%s: unexpected result %v", c.name, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("APP_ENV", "production")
	t.Setenv("GRPC_ADDR", "")
	t.Setenv("RABBIT_URL", "")
	t.Setenv("NOTIFY_EXCHANGE", "")
	t.Setenv("BOOTSTRAP_ADMIN_USERNAME", "")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() || cfg.GRPCAddr != ":50051" || cfg.NotifyExchange != "booking.exchange" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RabbitURL != "" {
		t.Fatalf("rabbit must be disabled by default")
	}
	if cfg.BootstrapAdminUsername != "" {
		t.Fatalf("bootstrap admin must be disabled by default")
	}
}
