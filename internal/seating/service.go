package seating

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SeatingService validates layout requests and runs the
// balance -> shuffle -> assign pipeline.
type SeatingService struct {
	source   Source
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSeatingService creates a seating service drawing from source.
// A nil source falls back to a randomly seeded one.
func NewSeatingService(source Source, logger *zap.Logger) *SeatingService {
	if source == nil {
		source = NewLockedSource(NewRandomSource())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeatingService{
		source:   source,
		validate: validator.New(),
		logger:   logger,
	}
}

// Plan is the outcome of one Generate call.
type Plan struct {
	Request     SeatLayoutRequest `json:"request"`
	Permutation []int             `json:"permutation"`
	Grid        OccupancyGrid     `json:"grid"`
}

// GenerateOption tweaks a single Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	source Source
}

// WithSeed makes the shuffle reproducible for this call only.
func WithSeed(seed uint64) GenerateOption {
	return func(o *generateOptions) {
		o.source = NewSource(seed)
	}
}

// Balance validates the counts and returns the centre-out column depths.
func (s *SeatingService) Balance(studentCount, columnCount int) ([]int, error) {
	if studentCount < 1 || studentCount > MaxStudents {
		return nil, ErrInvalidStudentCount
	}
	if columnCount < 1 || columnCount > MaxColumns {
		return nil, ErrInvalidColumnCount
	}
	return Balance(studentCount, columnCount), nil
}

// Normalize validates req and fills in whatever the caller left implicit:
// the student count when only per-column depths were given, and the
// balanced depths when none were given.
func (s *SeatingService) Normalize(req SeatLayoutRequest) (SeatLayoutRequest, error) {
	if len(req.PerColumnDepth) > 0 {
		if req.ColumnCount == 0 {
			req.ColumnCount = len(req.PerColumnDepth)
		}
		if req.StudentCount == 0 {
			req.StudentCount = sum(req.PerColumnDepth)
		}
		// Balance leaves outer columns empty when students < columns; such
		// depths are accepted as-is and recomputed below.
		if isBalanced(req) {
			req.PerColumnDepth = nil
		}
	}

	if err := s.validate.Struct(req); err != nil {
		return req, translateValidation(err)
	}

	if len(req.PerColumnDepth) == 0 {
		req.PerColumnDepth = Balance(req.StudentCount, req.ColumnCount)
		return req, nil
	}
	if len(req.PerColumnDepth) != req.ColumnCount {
		return req, ErrDepthLength
	}
	if sum(req.PerColumnDepth) != req.StudentCount {
		return req, ErrDepthSum
	}
	req.PerColumnDepth = append([]int(nil), req.PerColumnDepth...)
	return req, nil
}

// Generate produces a fresh random assignment for req.
func (s *SeatingService) Generate(req SeatLayoutRequest, opts ...GenerateOption) (Plan, error) {
	req, err := s.Normalize(req)
	if err != nil {
		return Plan{}, err
	}

	o := generateOptions{source: s.source}
	for _, opt := range opts {
		opt(&o)
	}

	perm := Shuffle(req.StudentCount, o.source)
	grid := Assign(perm, req.PerColumnDepth, req.ColumnCount)

	s.logger.Debug("seat layout generated",
		zap.String("class", req.ClassName),
		zap.Int("students", req.StudentCount),
		zap.Ints("depths", req.PerColumnDepth),
	)
	return Plan{Request: req, Permutation: perm, Grid: grid}, nil
}

func isBalanced(req SeatLayoutRequest) bool {
	if req.StudentCount < 1 || req.StudentCount > MaxStudents ||
		req.ColumnCount < 1 || req.ColumnCount > MaxColumns {
		return false
	}
	return slices.Equal(req.PerColumnDepth, Balance(req.StudentCount, req.ColumnCount))
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	fe := verrs[0]
	switch {
	case fe.StructField() == "StudentCount":
		return ErrInvalidStudentCount
	case fe.StructField() == "ColumnCount":
		return ErrInvalidColumnCount
	case strings.HasPrefix(fe.StructField(), "PerColumnDepth"):
		return ErrInvalidDepth
	default:
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidRequest, fe.Field(), fe.Tag())
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
