package ws

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/models"
	"chargecalc/backend/services/calculator-service/internal/service"
)

// MessageProcessor handles one raw frame and returns the reply frame.
type MessageProcessor interface {
	Process(ctx context.Context, raw []byte) ([]byte, error)
}

// Estimator computes estimates for a submission.
type Estimator interface {
	Estimate(ctx context.Context, channel string, req models.EstimateRequest) (*models.EstimateResponse, error)
}

type errorReply struct {
	Error string `json:"error"`
}

// EstimateProcessor answers each EstimateRequest frame with an EstimateResponse or an error frame.
type EstimateProcessor struct {
	estimator Estimator
	logger    *zap.Logger
}

// NewEstimateProcessor builds processor.
func NewEstimateProcessor(estimator Estimator, logger *zap.Logger) *EstimateProcessor {
	return &EstimateProcessor{estimator: estimator, logger: logger}
}

// Process decodes the request and encodes the reply. Input errors are replied to, not returned.
func (p *EstimateProcessor) Process(ctx context.Context, raw []byte) ([]byte, error) {
	req, err := models.DecodeEstimateRequest(bytes.NewReader(raw))
	if err != nil {
		metrics.EstimatesTotal.WithLabelValues(metrics.ResultBadInput, service.ChannelLive).Inc()
		return json.Marshal(errorReply{Error: "invalid json"})
	}

	resp, err := p.estimator.Estimate(ctx, service.ChannelLive, req)
	if err != nil {
		if service.IsInputError(err) {
			return json.Marshal(errorReply{Error: err.Error()})
		}
		p.logger.Error("live estimate failed", zap.Error(err))
		return json.Marshal(errorReply{Error: "estimate failed"})
	}
	return json.Marshal(resp)
}
