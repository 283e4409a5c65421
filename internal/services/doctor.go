package services

import (
	"fmt"
	"os/exec"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// DoctorService runs environment diagnostics.
type DoctorService struct {
	Config   domain.Config
	Provider ports.Provider
	Security ports.SecurityService
}

// Run executes checks and returns a report.
func (s *DoctorService) Run() domain.HealthReport {
	var checks []domain.HealthCheck

	checks = append(checks, toolCheck("man", "manual pages unavailable; only help-flag output will be used"))
	checks = append(checks, toolCheck("col", "overstrike filtering unavailable; man output may contain escapes"))

	if s.Provider != nil {
		checks = append(checks, ok("Provider", string(s.Config.Provider)))
	} else {
		checks = append(checks, fail("Provider", "not initialized"))
	}

	switch {
	case !s.Config.NeedsAPIKey():
		checks = append(checks, ok("Credential", fmt.Sprintf("%s provider needs no API key", s.Config.Provider)))
	case s.Config.APIKey != "":
		checks = append(checks, ok("Credential", "API key configured"))
	default:
		checks = append(checks, warn("Credential", "no API key found in environment, config file, or keychain"))
	}

	if s.Config.Provider == domain.ProviderLocal && s.Config.APIURL == "" {
		checks = append(checks, warn("Endpoint", "local provider selected but LOCALHELP_API_URL is unset"))
	}

	if s.Security != nil {
		// A harmless probe command should never trip a rule; if it does the
		// rules file is overbroad and will warn on everything.
		if warnings := s.Security.Evaluate("ls"); len(warnings) > 0 {
			checks = append(checks, warn("Guardrail", "rules flag a harmless command; review the rules file"))
		} else {
			checks = append(checks, ok("Guardrail", "rules loaded"))
		}
	} else {
		checks = append(checks, warn("Guardrail", "security service not initialized"))
	}

	return domain.HealthReport{Checks: checks}
}

func toolCheck(name, missingDetail string) domain.HealthCheck {
	if _, err := exec.LookPath(name); err != nil {
		return warn(name, missingDetail)
	}
	return ok(name, "found in PATH")
}

func ok(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Detail: detail}
}

func warn(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Detail: detail}
}

func fail(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Detail: detail}
}
