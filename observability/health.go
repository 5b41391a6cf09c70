package observability

import "context"

// HealthStatus is the reported state of the service or one of its
// dependencies. userd has no partial-failure mode: a dependency either
// serves or it does not.
type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "up"
	HealthStatusDown HealthStatus = "down"
)

// Health is a single dependency's self-report.
type Health struct {
	Name    string            `json:"name"`
	Status  HealthStatus      `json:"status"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ServiceHealth is the payload of the health endpoint: the service identity
// plus the reports of every polled dependency.
type ServiceHealth struct {
	Service    string       `json:"service"`
	Status     HealthStatus `json:"status"`
	Version    string       `json:"version,omitempty"`
	Components []Health     `json:"components,omitempty"`
}

// HealthChecker is implemented by dependencies the health endpoint polls.
type HealthChecker interface {
	CheckHealth(ctx context.Context) Health
}

// NewServiceHealth creates a ServiceHealth that starts up; any down
// component recorded later takes the whole service down.
func NewServiceHealth(service, version string) *ServiceHealth {
	return &ServiceHealth{
		Service: service,
		Status:  HealthStatusUp,
		Version: version,
	}
}

// AddComponent records one dependency report.
func (sh *ServiceHealth) AddComponent(ch Health) {
	sh.Components = append(sh.Components, ch)
	if ch.Status == HealthStatusDown {
		sh.Status = HealthStatusDown
	}
}

// Check polls every checker and folds the results in.
func (sh *ServiceHealth) Check(ctx context.Context, checkers ...HealthChecker) {
	for _, c := range checkers {
		sh.AddComponent(c.CheckHealth(ctx))
	}
}
