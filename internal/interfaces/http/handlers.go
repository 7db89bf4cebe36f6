// Package http exposes the codec over a small gin-based HTTP API, mirroring
// the CLI surface: encode, decode, alphabet, constraints, health, metrics.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/go-selfies/internal/monitoring/logging"
	"github.com/turtacn/go-selfies/internal/monitoring/metrics"
	"github.com/turtacn/go-selfies/pkg/errors"
	"github.com/turtacn/go-selfies/pkg/selfies"
)

// Handlers carries the dependencies of the HTTP endpoints.
type Handlers struct {
	Logger  logging.Logger
	Metrics *metrics.Collector
}

// NewHandlers constructs the endpoint set.  A nil logger falls back to the
// no-op logger; a nil collector disables instrumentation.
func NewHandlers(logger logging.Logger, collector *metrics.Collector) *Handlers {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Handlers{Logger: logger.Named("http"), Metrics: collector}
}

// errorEnvelope is the JSON error body derived from AppError.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (h *Handlers) renderError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	env := errorEnvelope{Code: code.String(), Message: errors.DefaultMessageForCode(code)}
	var ae *errors.AppError
	if stderrorsAs(err, &ae) {
		env.Message = ae.Message
		env.Detail = ae.Detail
	}
	c.JSON(errors.HTTPStatusForCode(code), gin.H{"error": env})
}

type encodeRequest struct {
	SMILES    string `json:"smiles" binding:"required"`
	Attribute bool   `json:"attribute"`
}

type decodeRequest struct {
	SELFIES    string `json:"selfies" binding:"required"`
	Attribute  bool   `json:"attribute"`
	Compatible bool   `json:"compatible"`
}

// Encode handles POST /api/v1/encode.
func (h *Handlers) Encode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderError(c, errors.InvalidParam("request body must carry a smiles field").WithCause(err))
		return
	}

	start := time.Now()
	var (
		out   string
		attrs selfies.AttributionMap
		err   error
	)
	if req.Attribute {
		out, attrs, err = selfies.EncoderAttributed(req.SMILES)
	} else {
		out, err = selfies.Encoder(req.SMILES)
	}
	if h.Metrics != nil {
		h.Metrics.ObserveTranslation(metrics.DirectionEncode, start, selfies.LenSelfies(out), err)
	}
	if err != nil {
		h.Logger.Warn("encode failed", logging.String("smiles", req.SMILES), logging.Err(err))
		h.renderError(c, err)
		return
	}

	h.Logger.Debug("encode ok",
		logging.Int("symbols", selfies.LenSelfies(out)),
		logging.Duration("took", time.Since(start)))
	resp := gin.H{"selfies": out}
	if req.Attribute {
		resp["attribution"] = attrs
	}
	c.JSON(http.StatusOK, resp)
}

// Decode handles POST /api/v1/decode.
func (h *Handlers) Decode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderError(c, errors.InvalidParam("request body must carry a selfies field").WithCause(err))
		return
	}

	start := time.Now()
	var (
		out   string
		attrs selfies.AttributionMap
		err   error
	)
	switch {
	case req.Attribute:
		out, attrs, err = selfies.DecoderAttributed(req.SELFIES)
	default:
		out, err = selfies.DecoderWithOptions(req.SELFIES, selfies.DecodeOptions{Compatible: req.Compatible})
	}
	if h.Metrics != nil {
		h.Metrics.ObserveTranslation(metrics.DirectionDecode, start, len(out), err)
	}
	if err != nil {
		h.Logger.Warn("decode failed", logging.String("selfies", req.SELFIES), logging.Err(err))
		h.renderError(c, err)
		return
	}

	resp := gin.H{"smiles": out}
	if req.Attribute {
		resp["attribution"] = attrs
	}
	c.JSON(http.StatusOK, resp)
}

// Alphabet handles GET /api/v1/alphabet.
func (h *Handlers) Alphabet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": selfies.GetSemanticRobustAlphabet()})
}

// GetConstraints handles GET /api/v1/constraints.
func (h *Handlers) GetConstraints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"constraints": selfies.GetSemanticConstraints()})
}

type constraintsRequest struct {
	Preset string         `json:"preset"`
	Table  map[string]int `json:"table"`
}

// PutConstraints handles PUT /api/v1/constraints: install a preset or a full
// custom table.
func (h *Handlers) PutConstraints(c *gin.Context) {
	var req constraintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderError(c, errors.InvalidParam("request body must carry preset or table").WithCause(err))
		return
	}

	var err error
	switch {
	case req.Preset != "":
		err = selfies.SetSemanticConstraintsPreset(req.Preset)
	case len(req.Table) > 0:
		err = selfies.SetSemanticConstraints(req.Table)
	default:
		err = errors.InvalidParam("request body must carry preset or table")
	}
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.Logger.Info("constraints updated", logging.String("preset", req.Preset))
	c.JSON(http.StatusOK, gin.H{"constraints": selfies.GetSemanticConstraints()})
}

// Health handles GET /healthz.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// stderrorsAs isolates the errors.As dependency so the import list stays on
// the package's own errors module.
func stderrorsAs(err error, target **errors.AppError) bool {
	for err != nil {
		if ae, ok := err.(*errors.AppError); ok {
			*target = ae
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

//Personal.AI order the ending
