package observability

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("Endpoint = %q, want localhost:4318", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("Interval = %v, want 15s", cfg.Interval)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{SampleRate: 0.5, Interval: time.Second}, ""},
		{"rate too high", Config{SampleRate: 1.5}, "sample_rate"},
		{"rate negative", Config{SampleRate: -0.1}, "sample_rate"},
		{"interval negative", Config{SampleRate: 1, Interval: -time.Second}, "interval"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestConfigDerivedSettings(t *testing.T) {
	cfg := Config{Endpoint: "otel:4318", Insecure: true, SampleRate: 0.25, Interval: time.Minute}

	tc := cfg.TracerConfig("userd", "1.2.3", "staging")
	if tc.Endpoint != "otel:4318" || tc.SampleRate != 0.25 || !tc.Insecure {
		t.Errorf("TracerConfig = %+v, does not carry config values", tc)
	}
	if tc.ServiceName != "userd" || tc.ServiceVersion != "1.2.3" || tc.Environment != "staging" {
		t.Errorf("TracerConfig = %+v, does not carry service identity", tc)
	}

	mc := cfg.MeterConfig("userd", "1.2.3", "staging")
	if mc.Interval != time.Minute || mc.Endpoint != "otel:4318" {
		t.Errorf("MeterConfig = %+v, does not carry config values", mc)
	}
}

func TestServiceHealthAggregation(t *testing.T) {
	sh := NewServiceHealth("userd", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Fatalf("initial status = %q, want up", sh.Status)
	}

	sh.AddComponent(Health{Name: "store", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("status after up component = %q, want up", sh.Status)
	}

	sh.AddComponent(Health{Name: "db", Status: HealthStatusDown})
	if sh.Status != HealthStatusDown {
		t.Errorf("status after down component = %q, want down", sh.Status)
	}

	// A later healthy component must not mask a down service.
	sh.AddComponent(Health{Name: "cache", Status: HealthStatusUp})
	if sh.Status != HealthStatusDown {
		t.Errorf("down status was overwritten, got %q", sh.Status)
	}
}

type stubChecker struct {
	health Health
}

func (s stubChecker) CheckHealth(context.Context) Health { return s.health }

func TestServiceHealthCheckPollsCheckers(t *testing.T) {
	sh := NewServiceHealth("userd", "1.0.0")
	sh.Check(context.Background(),
		stubChecker{Health{Name: "store", Status: HealthStatusUp}},
		stubChecker{Health{Name: "queue", Status: HealthStatusDown}},
	)

	if len(sh.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(sh.Components))
	}
	if sh.Status != HealthStatusDown {
		t.Errorf("status = %q, want down", sh.Status)
	}
}
