package repair

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/mend/internal/core/ports"
	"go.trai.ch/mend/internal/engine/diagnose"
	"go.trai.ch/zerr"
)

// State is the retry controller's position in its state machine.
type State int

const (
	StateIdle State = iota
	StateAttempting
	StatePruning
	StateSuccess
	StateAborted
	StateExhausted
)

// String returns the state name used in logs and summaries.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttempting:
		return "attempting"
	case StatePruning:
		return "pruning"
	case StateSuccess:
		return "success"
	case StateAborted:
		return "aborted"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the repair loop.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateAborted || s == StateExhausted
}

// Result describes how a repair run ended.
type Result struct {
	State    State
	Attempts int
	Budget   int
}

// Controller owns the install retry state machine. It exclusively owns the
// manifest and removal record for the duration of Run; no locking is needed.
type Controller struct {
	installer  ports.Installer
	store      ports.ManifestStore
	classifier *diagnose.Classifier
	tracer     ports.Tracer
	logger     ports.Logger
}

// NewController creates a Controller.
func NewController(
	installer ports.Installer,
	store ports.ManifestStore,
	classifier *diagnose.Classifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Controller {
	return &Controller{
		installer:  installer,
		store:      store,
		classifier: classifier,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run drives install attempts until one succeeds, a diagnostic cannot be
// classified, or the retry budget runs out.
//
// The budget is fixed at entry to the current entry count of both dependency
// maps. Every pruning transition removes at least one entry, so the loop
// terminates within budget+1 attempts. The manifest is persisted after every
// prune, before the next attempt.
func (c *Controller) Run(
	ctx context.Context,
	projectRoot string,
	manifestPath string,
	m *domain.Manifest,
	rec *domain.RemovalRecord,
) (Result, error) {
	budget := m.EntryCount()
	res := Result{State: StateIdle, Budget: budget}

	for attempt := 0; attempt <= budget; attempt++ {
		if err := ctx.Err(); err != nil {
			res.State = StateAborted
			return res, zerr.Wrap(err, "repair interrupted")
		}

		res.State = StateAttempting
		res.Attempts++
		spanCtx, span := c.tracer.Start(ctx, fmt.Sprintf("install attempt %d/%d", res.Attempts, budget+1))
		span.SetAttribute("attempt", res.Attempts)

		outcome := c.installer.Install(spanCtx, projectRoot)
		if outcome.OK {
			span.End()
			c.logger.Info(fmt.Sprintf("install succeeded after %d attempt(s)", res.Attempts))
			res.State = StateSuccess
			return res, nil
		}
		_, _ = io.WriteString(span, outcome.Diagnostic)

		alias, ok := c.classifier.Classify(outcome.Diagnostic)
		if !ok {
			err := zerr.With(domain.ErrUnclassifiableFailure, "diagnostic", outcome.Diagnostic)
			span.RecordError(err)
			span.End()
			res.State = StateAborted
			return res, err
		}

		res.State = StatePruning
		span.SetAttribute("alias", alias)

		removed := PruneAlias(m, alias, rec)
		if removed == 0 {
			// The alias is already gone from the manifest. The manifest is
			// unchanged, so skip the write; the budget bounds the retries.
			c.logger.Warn(fmt.Sprintf("alias %q matched no manifest entry", alias))
			span.End()
			continue
		}
		c.logger.Warn(fmt.Sprintf("removed %d entrie(s) for alias %q", removed, alias))

		if err := c.store.Save(manifestPath, m); err != nil {
			wrapped := zerr.Wrap(err, "failed to persist pruned manifest")
			span.RecordError(wrapped)
			span.End()
			res.State = StateAborted
			return res, wrapped
		}
		span.End()
	}

	res.State = StateExhausted
	return res, zerr.With(zerr.With(domain.ErrRetryBudgetExhausted, "budget", budget), "attempts", res.Attempts)
}
