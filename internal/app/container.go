// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/infrastructure/ai"
	"github.com/doeshing/localhelp/internal/infrastructure/config"
	"github.com/doeshing/localhelp/internal/infrastructure/docs"
	"github.com/doeshing/localhelp/internal/infrastructure/executor"
	"github.com/doeshing/localhelp/internal/infrastructure/secret"
	"github.com/doeshing/localhelp/internal/infrastructure/security"
	"github.com/doeshing/localhelp/internal/pkg/logger"
	"github.com/doeshing/localhelp/internal/ports"
	"github.com/doeshing/localhelp/internal/services"
)

// Container holds the constructed dependency graph.
type Container struct {
	Config        domain.Config
	AssistService *services.AssistService
	DoctorService *services.DoctorService
	Executor      ports.CommandExecutor
	Prompter      ports.ConfirmationPrompter
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph. Configuration and secret
// lookup happen here, once, before the pipeline starts.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	loader := config.NewLoader("", secret.NewStore(), log)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Debug = true
	}

	guardrail, err := security.NewGuardrail(guardrailRulesPath())
	if err != nil {
		// Broken user rules fall back to the embedded defaults.
		log.Warn("guardrail rules unusable, using defaults", map[string]interface{}{"error": err.Error()})
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}

	provider := ai.NewProvider(cfg, &http.Client{Timeout: domain.DefaultHTTPTimeout})

	assist := &services.AssistService{
		Resolver: docs.NewResolver(nil, log),
		Provider: provider,
		Security: guardrail,
		Logger:   log,
	}

	doctor := &services.DoctorService{
		Config:   cfg,
		Provider: provider,
		Security: guardrail,
	}

	return &Container{
		Config:        cfg,
		AssistService: assist,
		DoctorService: doctor,
		Executor:      executor.NewArgvExecutor(),
		Logger:        log,
	}, nil
}

func guardrailRulesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".localhelp", "guardrail.yaml")
}
