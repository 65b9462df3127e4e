package pricewalk

import (
	"context"
	"fmt"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	"github.com/aretw0/pricewalk/pkg/process"
	"github.com/aretw0/pricewalk/pkg/trace"
)

// generate dispatches a request to the trace generator for its process kind.
func generate(ctx context.Context, req domain.SimulationRequest, opts ...trace.Option) (domain.Table, error) {
	switch req.Process {
	case domain.ProcessLevel:
		p, err := process.DecodeLevel(levelParams(req))
		if err != nil {
			return nil, err
		}
		return trace.PriceTraces(ctx,
			func() ports.Process[domain.LevelState] { return p },
			func() domain.LevelState { return p.Start(req.StartPrice) },
			req.TimeSteps, req.NumTraces,
			process.LevelPrice,
			opts...,
		)

	case domain.ProcessMomentum:
		p, err := process.DecodeMomentum(req.Params)
		if err != nil {
			return nil, err
		}
		return trace.PriceTraces(ctx,
			func() ports.Process[domain.MomentumState] { return p },
			func() domain.MomentumState { return p.Start(req.StartPrice) },
			req.TimeSteps, req.NumTraces,
			process.MomentumPrice,
			opts...,
		)

	case domain.ProcessFrequency:
		p, err := process.DecodeFrequency(req.Params)
		if err != nil {
			return nil, err
		}
		return trace.PriceTraces(ctx,
			func() ports.Process[domain.FrequencyState] { return p },
			func() domain.FrequencyState { return p.Start(req.StartPrice) },
			req.TimeSteps, req.NumTraces,
			process.FrequencyPrice(req.StartPrice),
			opts...,
		)

	default:
		return nil, fmt.Errorf("%q: %w", req.Process, domain.ErrUnknownProcess)
	}
}

// levelParams defaults the reversion level to the start price.
func levelParams(req domain.SimulationRequest) map[string]any {
	params := make(map[string]any, len(req.Params)+1)
	params["level"] = req.StartPrice
	for k, v := range req.Params {
		params[k] = v
	}
	return params
}
