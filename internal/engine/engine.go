package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"runway-engine/internal/model"
	"runway-engine/internal/steps"
)

// ComputeFunc produces a projection for one set of inputs.
// Compute is the reference implementation; memo.Cache.Compute wraps it.
type ComputeFunc func(in model.ModelInputs) (*model.Projection, []model.CalculationMessage, error)

// Compute validates in against every step, then runs the steps in order.
// Any CRITICAL message fails the computation with a *model.ValidationError before
// a single month is projected; warnings are returned alongside the projection.
func Compute(in model.ModelInputs) (*model.Projection, []model.CalculationMessage, error) {
	pipeline := steps.Pipeline()

	var msgs []model.CalculationMessage
	for _, s := range pipeline {
		msgs = appendMessages(msgs, s.Validate(&in))
	}
	if model.HasCritical(msgs) {
		return nil, msgs, &model.ValidationError{Messages: msgs}
	}

	state := &model.Computation{Inputs: in}
	for _, s := range pipeline {
		msgs = appendMessages(msgs, s.Apply(state))
		if model.HasCritical(msgs) {
			return nil, msgs, &model.ValidationError{Messages: msgs}
		}
	}

	return state.Projection(), msgs, nil
}

func appendMessages(all, msgs []model.CalculationMessage) []model.CalculationMessage {
	for _, m := range msgs {
		m.ID = len(all)
		all = append(all, m)
	}
	return all
}

func Process(req *model.CalculationRequest) *model.CalculationResponse {
	return ProcessWith(req, Compute)
}

// ProcessWith wraps one computation in the calculation envelope.
func ProcessWith(req *model.CalculationRequest, compute ComputeFunc) *model.CalculationResponse {
	start := time.Now()
	projection, msgs, err := compute(req.Inputs)
	return Envelope(req.TenantID, start, projection, msgs, err)
}

// Envelope builds the calculation envelope for a computation that began at start.
// A non-nil err marks the outcome FAILURE and drops the projection.
func Envelope(tenantID string, start time.Time, projection *model.Projection, msgs []model.CalculationMessage, err error) *model.CalculationResponse {
	outcome := model.OutcomeSuccess
	if err != nil {
		outcome = model.OutcomeFailure
		projection = nil
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               tenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:   msgs,
			Projection: projection,
		},
	}
}

// ProcessBatch computes every scenario concurrently, at most limit at a time (no limit when
// limit <= 0). Results keep the request order. A nil compute uses Compute.
func ProcessBatch(ctx context.Context, req *model.BatchRequest, limit int, compute ComputeFunc) (*model.BatchResponse, error) {
	if compute == nil {
		compute = Compute
	}

	results := make([]model.ScenarioResponse, len(req.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, sc := range req.Scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp := ProcessWith(&model.CalculationRequest{TenantID: req.TenantID, Inputs: sc.Inputs}, compute)
			results[i] = model.ScenarioResponse{Name: sc.Name, Response: *resp}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.BatchResponse{TenantID: req.TenantID, Results: results}, nil
}
