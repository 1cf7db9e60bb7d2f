package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samirrijal/dronegeo/internal/core/domain"
	"github.com/samirrijal/dronegeo/internal/core/ports"
	"github.com/samirrijal/dronegeo/internal/pkg/geospatial"
	"github.com/samirrijal/dronegeo/internal/pkg/metrics"
	"github.com/samirrijal/dronegeo/internal/pkg/telemetry"
)

const (
	// DefaultCloseThreshold is the distance in degrees under which two
	// positions count as close.
	DefaultCloseThreshold = 0.00015
	// DefaultStepSize is the distance in degrees covered by one move.
	DefaultStepSize = 0.00015
	// AngleIncrement is the granularity of valid compass angles.
	AngleIncrement = 22.5
	// MinVertices is three distinct corners plus the closing duplicate.
	MinVertices = 4
)

// GeometryConfig holds the tunables of PositionService.
type GeometryConfig struct {
	CloseThreshold  float64
	StepSize        float64
	CacheTTLSeconds int
}

// DefaultGeometryConfig returns the navigation defaults.
func DefaultGeometryConfig() GeometryConfig {
	return GeometryConfig{
		CloseThreshold:  DefaultCloseThreshold,
		StepSize:        DefaultStepSize,
		CacheTTLSeconds: 300,
	}
}

// PositionService validates navigation requests and evaluates them.
// cache and events are optional.
type PositionService struct {
	cfg    GeometryConfig
	cache  ports.CacheService
	events ports.EventPublisher
	now    func() time.Time
}

// NewPositionService creates a new PositionService.
func NewPositionService(cfg GeometryConfig, cache ports.CacheService, events ports.EventPublisher) *PositionService {
	return &PositionService{cfg: cfg, cache: cache, events: events, now: time.Now}
}

// CloseThreshold is the threshold used by the proximity endpoint.
func (s *PositionService) CloseThreshold() float64 {
	return s.cfg.CloseThreshold
}

func validatePosition(p *domain.PositionInput) error {
	if p == nil {
		return domain.ErrMissingPosition
	}
	if p.Lng == nil || p.Lat == nil {
		return domain.ErrMissingCoordinate
	}
	if !validCoordinate(*p.Lng) || !validCoordinate(*p.Lat) {
		return fmt.Errorf("%w: lng or lat is not finite", domain.ErrMissingCoordinate)
	}
	return nil
}

func validCoordinate(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateDistance checks both positions of a distance request.
func (s *PositionService) ValidateDistance(req *domain.DistanceRequest) error {
	if req == nil {
		return fmt.Errorf("distance: %w", domain.ErrMissingRequest)
	}
	if err := validatePosition(req.Position1); err != nil {
		return fmt.Errorf("position1: %w", err)
	}
	if err := validatePosition(req.Position2); err != nil {
		return fmt.Errorf("position2: %w", err)
	}
	return nil
}

// CalculateDistance returns the distance in degrees between the two
// positions of a validated request.
func (s *PositionService) CalculateDistance(req *domain.DistanceRequest) float64 {
	return geospatial.Distance(req.Position1.Position(), req.Position2.Position())
}

// IsCloseTo reports whether the distance is strictly below threshold.
func (s *PositionService) IsCloseTo(req *domain.DistanceRequest, threshold float64) bool {
	return s.CalculateDistance(req) < threshold
}

// ValidateNextPosition checks the start position and the compass angle.
func (s *PositionService) ValidateNextPosition(req *domain.NextPositionRequest) error {
	if req == nil {
		return fmt.Errorf("next position: %w", domain.ErrMissingRequest)
	}
	if err := validatePosition(req.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if req.Angle == nil {
		return fmt.Errorf("%w: angle is missing", domain.ErrInvalidAngle)
	}
	angle := *req.Angle
	if math.IsNaN(angle) || angle < 0 || angle >= 360 {
		return fmt.Errorf("%w: out of range: %v", domain.ErrInvalidAngle, angle)
	}
	if math.Mod(angle, AngleIncrement) != 0 {
		return fmt.Errorf("%w: not a multiple of %v: %v", domain.ErrInvalidAngle, AngleIncrement, angle)
	}
	return nil
}

// CalculateNextPosition moves one step from the start of a validated request.
func (s *PositionService) CalculateNextPosition(req *domain.NextPositionRequest) domain.Position {
	return geospatial.Step(req.Start.Position(), *req.Angle, s.cfg.StepSize)
}

// ValidateRegion checks the tested position and the polygon, which must be
// explicitly closed and have at least MinVertices vertices.
func (s *PositionService) ValidateRegion(req *domain.RegionRequest) error {
	if req == nil {
		return fmt.Errorf("region request: %w", domain.ErrMissingRequest)
	}
	if err := validatePosition(req.Position); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if req.Region == nil {
		return domain.ErrMissingRegion
	}
	if req.Region.Name == nil || *req.Region.Name == "" {
		return fmt.Errorf("%w: name is missing", domain.ErrMissingRegion)
	}
	vertices := req.Region.Vertices
	if len(vertices) == 0 {
		return fmt.Errorf("%w: vertices are missing", domain.ErrInvalidVertexCount)
	}
	for i, v := range vertices {
		if err := validatePosition(v); err != nil {
			return fmt.Errorf("vertex %d: %w", i, err)
		}
	}
	if len(vertices) < MinVertices {
		return fmt.Errorf("%w: got %d, need at least %d", domain.ErrInvalidVertexCount, len(vertices), MinVertices)
	}
	first, last := vertices[0].Position(), vertices[len(vertices)-1].Position()
	if !first.Equal(last) {
		return domain.ErrUnclosedPolygon
	}
	return nil
}

// IsInRegion reports whether the position of a validated request lies inside
// (or on the border of) its region. Results are served from the cache when
// one is configured, and every evaluation is published when a publisher is
// configured. Neither collaborator can change the answer.
func (s *PositionService) IsInRegion(ctx context.Context, req *domain.RegionRequest) bool {
	position := req.Position.Position()
	region := req.Region.Region()

	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, "PositionService.IsInRegion")
	defer span.End()
	span.SetAttributes(
		attribute.String(telemetry.AttrRegionName, region.Name),
		attribute.Int(telemetry.AttrRegionVertices, len(region.Vertices)),
	)

	cacheKey := regionCacheKey(position, region)
	inside, cached := s.cachedResult(ctx, cacheKey)
	if !cached {
		inside = geospatial.PointInPolygon(position, region.Vertices)
		s.storeResult(ctx, cacheKey, inside)
	}
	span.SetAttributes(
		attribute.Bool(telemetry.AttrRegionInside, inside),
		attribute.Bool(telemetry.AttrCacheHit, cached),
	)
	metrics.RegionChecks.WithLabelValues(resultLabel(inside)).Inc()

	if s.events != nil {
		event := &domain.RegionCheckEvent{
			Region:    region.Name,
			Position:  position,
			Inside:    inside,
			CheckedAt: s.now().UTC(),
		}
		if err := s.events.PublishRegionCheck(ctx, event); err != nil {
			metrics.EventPublishErrors.Inc()
			slog.WarnContext(ctx, "publish region check failed", "region", region.Name, "error", err)
		}
	}

	return inside
}

func (s *PositionService) cachedResult(ctx context.Context, key string) (inside, ok bool) {
	if s.cache == nil || key == "" {
		return false, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil || len(data) != 1 {
		metrics.CacheMisses.WithLabelValues("region").Inc()
		return false, false
	}
	metrics.CacheHits.WithLabelValues("region").Inc()
	return data[0] == '1', true
}

func (s *PositionService) storeResult(ctx context.Context, key string, inside bool) {
	if s.cache == nil || key == "" {
		return
	}
	value := []byte{'0'}
	if inside {
		value[0] = '1'
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTLSeconds); err != nil {
		slog.DebugContext(ctx, "cache region result failed", "error", err)
	}
}

// regionCacheKey hashes the evaluated inputs. The region name is left out
// since it does not affect containment.
func regionCacheKey(p domain.Position, r domain.Region) string {
	data, err := json.Marshal(struct {
		P domain.Position   `json:"p"`
		V []domain.Position `json:"v"`
	}{p, r.Vertices})
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return "geometry:region:" + hex.EncodeToString(h[:])
}

func resultLabel(inside bool) string {
	if inside {
		return "inside"
	}
	return "outside"
}
