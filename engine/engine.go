// Package engine drives technique application: it validates a request,
// prepares the technique context, applies techniques in priority order and
// scores the result.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/techniques"
	"github.com/teilomillet/promptgen/utils"
)

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("invalid request")

// Engine generates enhanced prompts. It is safe for concurrent use.
type Engine struct {
	cfg      *config.Config
	registry *techniques.Registry
	logger   utils.Logger
	validate *validator.Validate
	tokens   *utils.TokenCounter
	debug    *utils.DebugManager
	limiter  *rate.Limiter
}

type Option func(*Engine)

// WithRegistry makes the engine use r instead of a private copy of the
// shared registry. Engines given the same registry share its instances:
// the last engine built decides their configuration and logger.
func WithRegistry(r *techniques.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New builds an engine from cfg, initialising an instance of every
// technique registered in its registry. A nil cfg uses config.NewConfig.
//
// Without WithRegistry the engine works on a snapshot of the factories in
// techniques.DefaultRegistry taken here, so its technique configs and
// logger never leak into other engines. Factories registered on the shared
// registry afterwards are not seen.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		logger: utils.WithFields(logger, "component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = techniques.DefaultRegistry().Clone()
	}
	e.registry.SetLogger(logger)

	var cfgs map[string]techniques.Config
	if cfg.TechniquesConfigPath != "" {
		cfgs, err = config.LoadTechniqueConfigs(cfg.TechniquesConfigPath)
		if err != nil {
			return nil, err
		}
	}
	if err := e.registry.InitializeAll(cfgs); err != nil {
		return nil, err
	}

	e.validate = validator.New()
	if err := e.validate.RegisterValidation("technique", e.validateTechnique); err != nil {
		return nil, fmt.Errorf("failed to register technique validator: %w", err)
	}

	e.tokens = utils.NewTokenCounter(cfg.TokenModel, e.logger)
	if cfg.DebugDir != "" {
		e.debug = utils.NewDebugManager(utils.DebugOptions{
			Enabled:    true,
			OutputDir:  cfg.DebugDir,
			SaveToFile: true,
			LogPrompts: true,
		}, e.logger)
	}
	if cfg.RateLimit > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	e.logger.Info("Engine ready", "techniques", len(e.registry.ListAvailable()))
	return e, nil
}

func (e *Engine) validateTechnique(fl validator.FieldLevel) bool {
	return e.registry.IsRegistered(fl.Field().String())
}

// Registry returns the registry the engine applies techniques from.
func (e *Engine) Registry() *techniques.Registry {
	return e.registry
}

// Validate checks req against its field rules and the configured maximum
// prompt length.
func (e *Engine) Validate(req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: prompt text cannot be empty", ErrInvalidRequest)
	}
	if n := utf8.RuneCountInString(req.Text); n > e.cfg.MaxPromptLength {
		return fmt.Errorf("%w: prompt exceeds maximum length of %d characters", ErrInvalidRequest, e.cfg.MaxPromptLength)
	}
	if err := e.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Generate validates req, applies its techniques and scores the result.
// Cancelling ctx stops generation between techniques.
func (e *Engine) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	id := uuid.NewString()
	logger := utils.WithFields(e.logger, "generation_id", id)

	if e.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.RequestTimeout)
		defer cancel()
	}

	logger.Info("Starting prompt generation", "techniques", req.Techniques, "intent", req.Intent)

	if err := e.Validate(req); err != nil {
		logger.Warn("Rejected request", "error", err)
		return nil, err
	}

	tctx := e.prepareContext(req)
	e.debug.LogPrompt("original", req.Text)

	enhanced, applied, err := e.applyTechniques(ctx, req.Text, req.Techniques, tctx)
	if err != nil {
		logger.Error("Prompt generation failed", "error", err)
		return nil, err
	}

	enhanced = PostProcess(enhanced, req.MaxTokens)
	e.debug.LogPrompt("enhanced", enhanced)

	metrics := CalculateMetrics(req.Text, enhanced, applied)
	resp := &Response{
		ID:                id,
		Text:              enhanced,
		OriginalText:      req.Text,
		TechniquesApplied: applied,
		TokenCount:        e.tokens.Count(enhanced),
		ModelVersion:      e.cfg.Version,
		Metrics:           metrics,
		Metadata: map[string]any{
			"intent":       req.Intent,
			"complexity":   req.Complexity,
			"target_model": req.TargetModel,
		},
		Confidence:     metrics.OverallQuality,
		Warnings:       Check(req.Text, req.Techniques),
		GenerationTime: time.Since(start),
	}

	logger.Info("Prompt generation completed",
		"duration", resp.GenerationTime,
		"token_count", resp.TokenCount,
		"applied", applied)
	return resp, nil
}

// prepareContext builds the technique context. Request context entries
// override the request fields of the same name.
func (e *Engine) prepareContext(req Request) techniques.Context {
	temperature := e.cfg.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	tctx := techniques.Context{
		"temperature": temperature,
	}
	if req.Intent != "" {
		tctx["intent"] = req.Intent
	}
	if req.Complexity != "" {
		tctx["complexity"] = req.Complexity
	}
	if req.TargetModel != "" {
		tctx["target_model"] = req.TargetModel
	}
	for k, v := range req.Context {
		tctx[k] = v
	}
	if len(req.Parameters) > 0 {
		tctx["parameters"] = req.Parameters
	}
	return tctx
}

// applyTechniques applies ids in priority order. A technique that fails is
// logged and skipped; a done ctx aborts with its error.
func (e *Engine) applyTechniques(ctx context.Context, text string, ids []string, tctx techniques.Context) (string, []string, error) {
	result := text
	applied := make([]string, 0, len(ids))

	for _, id := range e.registry.SortByPriority(ids) {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("generation interrupted before %s: %w", id, err)
		}
		out, err := e.registry.ApplyTechnique(id, result, tctx)
		if err != nil {
			e.logger.Error("Failed to apply technique", "technique", id, "error", err)
			continue
		}
		result = out
		applied = append(applied, id)
	}
	return result, applied, nil
}
