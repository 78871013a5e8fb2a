package usecase

import "github.com/riskibarqy/royale-stats/internal/platform/tracing"

var usecaseTracer = tracing.New("royale-stats/internal/usecase")

var startUsecaseSpan = usecaseTracer.Start
