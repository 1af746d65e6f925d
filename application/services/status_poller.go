package services

import (
	"context"
	"sync"
	"time"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
)

type statusPoller struct {
	logger       outbound.LoggerPort
	orchestrator inbound.GenerationOrchestratorPort
	projects     outbound.ProjectStorePort
	generations  outbound.GenerationStorePort
	dispatcher   outbound.TaskDispatcher
	interval     time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewStatusPoller(logger outbound.LoggerPort, orchestrator inbound.GenerationOrchestratorPort,
	projects outbound.ProjectStorePort, generations outbound.GenerationStorePort,
	dispatcher outbound.TaskDispatcher, interval time.Duration) inbound.StatusPollerPort {
	return &statusPoller{
		logger:       logger,
		orchestrator: orchestrator,
		projects:     projects,
		generations:  generations,
		dispatcher:   dispatcher,
		interval:     interval,
	}
}

func (p *statusPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return nil
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	err := p.dispatcher.Submit(func() {
		defer close(done)
		p.loop(pollCtx)
	})
	if err != nil {
		cancel()
		return err
	}

	p.cancel = cancel
	p.done = done
	p.running = true
	p.logger.InfoWithFields("status poller started", map[string]interface{}{
		"interval": p.interval.String(),
	})
	return nil
}

// Stop cancels the loop and waits for the in-flight tick to finish.
func (p *statusPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	cancel, done := p.cancel, p.done
	p.running = false
	p.mu.Unlock()

	cancel()
	<-done
	p.logger.Info("status poller stopped")
}

func (p *statusPoller) loop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce reconciles every non-terminal record across all active projects.
// A failing record or project is logged and skipped; the next tick retries.
func (p *statusPoller) RunOnce(ctx context.Context) {
	pollTicksTotal.Inc()

	projects, err := p.projects.ListActiveProjects(ctx)
	if err != nil {
		p.logger.Error(err, "failed to list active projects")
		return
	}

	for _, project := range projects {
		records, err := p.generations.ListNonTerminal(ctx, project.ID)
		if err != nil {
			p.logger.ErrorWithFields(err, "failed to list pending generations", map[string]interface{}{
				"project_id": project.ID,
			})
			continue
		}

		for _, record := range records {
			if ctx.Err() != nil {
				return
			}
			reconcilesTotal.Inc()
			if _, err := p.orchestrator.Reconcile(ctx, record); err != nil {
				reconcileFailuresTotal.Inc()
			}
		}
	}
}
