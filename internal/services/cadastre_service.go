package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stwalsh4118/cadastre/internal/cadnum"
	"github.com/stwalsh4118/cadastre/internal/logger"
	"github.com/stwalsh4118/cadastre/internal/metrics"
	"github.com/stwalsh4118/cadastre/internal/models"
	"github.com/stwalsh4118/cadastre/internal/registry"
)

// Service-level errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed registry response")
)

// Lookup outcomes recorded in metrics and the journal.
const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeInvalidInput   = "invalid_input"
	OutcomeTransportError = "transport_error"
	OutcomeMalformed      = "malformed"
)

// journalTimeout bounds a single journal write.
const journalTimeout = 2 * time.Second

// CadastreService is the entry point for registry lookups.
//
// Every method returns the absent value (nil object, or an empty non-nil
// slice) whenever it returns an error, so callers that ignore the error see
// "no data". A valid request the registry answers with an empty body also
// yields the absent value, with a nil error.
type CadastreService interface {
	// LookupByCadastralNumber validates and normalizes text, then looks the
	// object up by its canonical number.
	// Returns ErrInvalidInput without a network call if text is not a cadastral number.
	LookupByCadastralNumber(ctx context.Context, text string) (*models.CadastralObject, error)

	// LookupByID fetches a single object.
	// Returns ErrInvalidInput without a network call if id is empty.
	LookupByID(ctx context.Context, id string) (*models.CadastralObject, error)

	// SearchByNumber finds objects by full or partial number.
	// Returns ErrInvalidInput without a network call if number is empty.
	SearchByNumber(ctx context.Context, number string) ([]models.SearchResult, error)

	// SearchByAddress finds objects by structured address.
	// Returns ErrInvalidInput without a network call if the macro region is empty.
	SearchByAddress(ctx context.Context, query registry.AddressQuery) ([]models.SearchResult, error)

	// ListMacroRegions lists the top level of the address hierarchy.
	ListMacroRegions(ctx context.Context) ([]models.Region, error)

	// ListChildRegions lists the direct children of a region.
	// Returns ErrInvalidInput without a network call if parentID is empty.
	ListChildRegions(ctx context.Context, parentID string) ([]models.Region, error)

	// ResolveSearchResult fetches the full record behind a search result.
	ResolveSearchResult(ctx context.Context, result models.SearchResult) (*models.CadastralObject, error)

	// RegionChildren lists the children of region.
	RegionChildren(ctx context.Context, region models.Region) ([]models.Region, error)
}

// Journal receives one entry per facade call.
type Journal interface {
	Append(ctx context.Context, entry models.JournalEntry) error
}

// Option configures a CadastreService.
type Option func(*cadastreService)

// WithJournal records every call in j. Journal failures are logged and
// never change a lookup result.
func WithJournal(j Journal) Option {
	return func(s *cadastreService) {
		s.journal = j
	}
}

// WithMetrics records call outcomes and upstream failures in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *cadastreService) {
		s.metrics = m
	}
}

// cadastreService is the concrete implementation of CadastreService.
type cadastreService struct {
	resolver  *registry.Resolver
	transport registry.Transport
	log       *logger.Logger
	journal   Journal
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// NewCadastreService creates a new instance of CadastreService.
func NewCadastreService(resolver *registry.Resolver, transport registry.Transport, log *logger.Logger, opts ...Option) CadastreService {
	s := &cadastreService{
		resolver:  resolver,
		transport: transport,
		log:       log,
		tracer:    otel.Tracer("cadastre/services"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LookupByCadastralNumber normalizes text and delegates to LookupByID.
func (s *cadastreService) LookupByCadastralNumber(ctx context.Context, text string) (obj *models.CadastralObject, err error) {
	id, nerr := cadnum.Normalize(strings.TrimSpace(text))
	if nerr == nil {
		return s.LookupByID(ctx, id)
	}

	ctx, c := s.begin(ctx, registry.OpObjectByID, text)
	defer func() { s.end(ctx, c, 0, err) }()

	s.log.Debug("Rejected cadastral number", map[string]interface{}{
		"input": text,
		"error": nerr.Error(),
	})
	return nil, fmt.Errorf("%w: %q is not a cadastral number", ErrInvalidInput, text)
}

// LookupByID fetches and decodes a single CadastralObject.
func (s *cadastreService) LookupByID(ctx context.Context, id string) (obj *models.CadastralObject, err error) {
	ctx, c := s.begin(ctx, registry.OpObjectByID, id)
	defer func() { s.end(ctx, c, boolCount(obj != nil), err) }()

	if id == "" {
		return nil, fmt.Errorf("%w: empty object id", ErrInvalidInput)
	}

	body, err := s.fetch(ctx, c, s.resolver.ByID(id))
	if err != nil {
		return nil, err
	}

	var decoded *models.CadastralObject
	present, err := decode(body, &decoded)
	if err != nil {
		return nil, s.malformed(c, err)
	}
	if !present || decoded == nil {
		return nil, nil
	}
	if decoded.ObjectID == "" {
		return nil, s.malformed(c, errors.New("object has no objectId"))
	}

	if verr := decoded.Validate(); verr != nil {
		s.log.Warn("Registry object violates type invariant", map[string]interface{}{
			"object_id": decoded.ObjectID,
			"type":      decoded.Type,
			"error":     verr.Error(),
		})
	}

	return decoded, nil
}

// SearchByNumber searches objects by number.
func (s *cadastreService) SearchByNumber(ctx context.Context, number string) (results []models.SearchResult, err error) {
	ctx, c := s.begin(ctx, registry.OpObjectsByNumber, number)
	defer func() { s.end(ctx, c, len(results), err) }()

	number = strings.TrimSpace(number)
	if number == "" {
		return []models.SearchResult{}, fmt.Errorf("%w: empty number", ErrInvalidInput)
	}

	return fetchList[models.SearchResult](ctx, s, c, s.resolver.ByNumber(number))
}

// SearchByAddress searches objects by address.
func (s *cadastreService) SearchByAddress(ctx context.Context, query registry.AddressQuery) (results []models.SearchResult, err error) {
	encoded := query.Encode()
	ctx, c := s.begin(ctx, registry.OpObjectsByAddress, encoded)
	defer func() { s.end(ctx, c, len(results), err) }()

	if encoded == "" {
		return []models.SearchResult{}, fmt.Errorf("%w: macro region is required", ErrInvalidInput)
	}

	return fetchList[models.SearchResult](ctx, s, c, s.resolver.ByAddress(encoded))
}

// ListMacroRegions lists macro regions.
func (s *cadastreService) ListMacroRegions(ctx context.Context) (regions []models.Region, err error) {
	ctx, c := s.begin(ctx, registry.OpMacroRegions, "")
	defer func() { s.end(ctx, c, len(regions), err) }()

	return fetchList[models.Region](ctx, s, c, s.resolver.MacroRegions())
}

// ListChildRegions lists the children of parentID.
func (s *cadastreService) ListChildRegions(ctx context.Context, parentID string) (regions []models.Region, err error) {
	ctx, c := s.begin(ctx, registry.OpSubRegions, parentID)
	defer func() { s.end(ctx, c, len(regions), err) }()

	if parentID == "" {
		return []models.Region{}, fmt.Errorf("%w: empty parent region id", ErrInvalidInput)
	}

	return fetchList[models.Region](ctx, s, c, s.resolver.SubRegions(parentID))
}

// ResolveSearchResult re-resolves a search result by its id.
func (s *cadastreService) ResolveSearchResult(ctx context.Context, result models.SearchResult) (*models.CadastralObject, error) {
	return s.LookupByID(ctx, result.ID())
}

// RegionChildren delegates to ListChildRegions.
func (s *cadastreService) RegionChildren(ctx context.Context, region models.Region) ([]models.Region, error) {
	return s.ListChildRegions(ctx, region.ID)
}

// call tracks one facade operation from begin to end.
type call struct {
	op    registry.Operation
	key   string
	start time.Time
	span  trace.Span
}

func (s *cadastreService) begin(ctx context.Context, op registry.Operation, key string) (context.Context, *call) {
	ctx, span := s.tracer.Start(ctx, "cadastre."+op.String(),
		trace.WithAttributes(
			attribute.String("cadastre.operation", op.String()),
			attribute.String("cadastre.key", key),
		))
	return ctx, &call{op: op, key: key, start: time.Now(), span: span}
}

func (s *cadastreService) end(ctx context.Context, c *call, count int, err error) {
	elapsed := time.Since(c.start)
	outcome := outcomeOf(count, err)

	c.span.SetAttributes(
		attribute.String("cadastre.outcome", outcome),
		attribute.Int("cadastre.result_count", count),
	)
	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, outcome)
	}
	c.span.End()

	s.metrics.ObserveLookup(c.op.String(), outcome, elapsed)

	s.log.Debug("Registry lookup finished", map[string]interface{}{
		"operation":    c.op.String(),
		"key":          c.key,
		"outcome":      outcome,
		"result_count": count,
		"duration_ms":  elapsed.Milliseconds(),
	})

	if s.journal == nil {
		return
	}
	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	entry := models.JournalEntry{
		Operation:   c.op.String(),
		LookupKey:   c.key,
		Outcome:     outcome,
		ResultCount: count,
		DurationMs:  elapsed.Milliseconds(),
	}
	if jerr := s.journal.Append(jctx, entry); jerr != nil {
		s.log.Error("Failed to append lookup journal entry", jerr, map[string]interface{}{
			"operation": c.op.String(),
		})
	}
}

// fetch performs the upstream GET, logging failures as the diagnostic channel.
func (s *cadastreService) fetch(ctx context.Context, c *call, url string) ([]byte, error) {
	s.log.Debug("Dispatching registry request", map[string]interface{}{
		"operation": c.op.String(),
		"url":       url,
	})

	body, err := s.transport.Get(ctx, url)
	if err != nil {
		category := registry.CategoryOf(err)
		if category == "" {
			category = registry.CategoryOutage
		}
		s.metrics.IncrementUpstreamError(c.op.String(), string(category))
		s.log.WithSpan(ctx).Warn("Registry request failed", map[string]interface{}{
			"operation": c.op.String(),
			"url":       url,
			"category":  string(category),
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}
	return body, nil
}

func (s *cadastreService) malformed(c *call, cause error) error {
	s.log.Warn("Malformed registry response", map[string]interface{}{
		"operation": c.op.String(),
		"key":       c.key,
		"error":     cause.Error(),
	})
	return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, c.op, cause)
}

// fetchList fetches and decodes a JSON array. The result is never nil.
func fetchList[T any](ctx context.Context, s *cadastreService, c *call, url string) ([]T, error) {
	body, err := s.fetch(ctx, c, url)
	if err != nil {
		return []T{}, err
	}

	var items []T
	if _, err := decode(body, &items); err != nil {
		return []T{}, s.malformed(c, err)
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

// decode unmarshals body into dst. Numbers held in untyped fields decode as
// json.Number. An empty body is reported as not present.
func decode(body []byte, dst any) (present bool, err error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return false, err
	}
	if dec.More() {
		return false, errors.New("unexpected data after JSON value")
	}
	return true, nil
}

func outcomeOf(count int, err error) string {
	switch {
	case err == nil && count > 0:
		return OutcomeOK
	case err == nil:
		return OutcomeEmpty
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeMalformed
	default:
		return OutcomeTransportError
	}
}

func boolCount(present bool) int {
	if present {
		return 1
	}
	return 0
}
