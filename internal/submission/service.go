package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/pbaille/blueprint/internal/classifier"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/insights"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/store"
)

// FailureNotice is the only thing users see when a reading cannot be saved
const FailureNotice = "An error occurred while generating your chart. Please try again."

const timeLayout = "15:04"

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
	ErrRemoteWrite  = errors.New("remote write failed")
)

// ValidationError names the input field that was rejected
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Service turns birth details into a stored reading
type Service struct {
	store   store.Store
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewService(s store.Store, logger providers.Logger, metrics providers.MetricsProviderInterface) *Service {
	return &Service{store: s, logger: logger, metrics: metrics}
}

// Submit validates the input, derives sign and life path, composes the
// insights and persists the chart and its insights in one transaction.
func (s *Service) Submit(ctx context.Context, input domain.BirthInput) (*domain.Reading, error) {
	input = normalize(input)

	birthDate, err := checkInput(input)
	if err != nil {
		s.metrics.IncSubmissionFailures("validation")
		return nil, err
	}

	result := classifier.Classify(birthDate)
	composed := insights.Compose(result.Sign, result.LifePath)

	chart := domain.Chart{
		FullName:       input.FullName,
		BirthDate:      birthDate,
		BirthTime:      optional(input.BirthTime),
		BirthPlace:     optional(input.BirthPlace),
		ZodiacSign:     result.Sign.String(),
		LifePathNumber: result.LifePath,
	}

	err = s.store.RunInTx(ctx, func(w store.Writer) error {
		chartID, err := w.InsertChart(ctx, &chart)
		if err != nil {
			return err
		}
		composed.ChartID = chartID
		_, err = w.InsertInsights(ctx, &composed)
		return err
	})
	if err != nil {
		s.logger.Errorf(providers.TypeSubmit, "save reading for %q: %v", input.FullName, err)
		s.metrics.IncSubmissionFailures("write")
		return nil, fmt.Errorf("%w: %w", ErrRemoteWrite, err)
	}

	s.logger.Infof(providers.TypeSubmit, "saved chart %s (%s, life path %d)", chart.ID, chart.ZodiacSign, chart.LifePathNumber)
	s.metrics.IncSubmissions(chart.ZodiacSign)

	return &domain.Reading{Chart: chart, Insights: composed}, nil
}

// Preview classifies a date and composes its insights without storing anything
func Preview(date string) (classifier.Result, domain.Insights, error) {
	if strings.TrimSpace(date) == "" {
		return classifier.Result{}, domain.Insights{}, &ValidationError{Field: "birth_date", Err: ErrMissingField}
	}
	d, err := classifier.ParseDate(date)
	if err != nil {
		return classifier.Result{}, domain.Insights{}, &ValidationError{Field: "birth_date", Err: fmt.Errorf("%w: %w", ErrInvalidField, err)}
	}
	result := classifier.Classify(d)
	return result, insights.Compose(result.Sign, result.LifePath), nil
}

// UserMessage is the text a form or API client should show for err
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if errors.Is(verr.Err, ErrMissingField) {
			return fieldLabel(verr.Field) + " is required"
		}
		return fieldLabel(verr.Field) + " is not valid"
	}
	return FailureNotice
}

func normalize(in domain.BirthInput) domain.BirthInput {
	return domain.BirthInput{
		FullName:   strings.TrimSpace(in.FullName),
		BirthDate:  strings.TrimSpace(in.BirthDate),
		BirthTime:  strings.TrimSpace(in.BirthTime),
		BirthPlace: strings.TrimSpace(in.BirthPlace),
	}
}

func checkInput(in domain.BirthInput) (time.Time, error) {
	if v := validate.Struct(&in); !v.Validate() {
		// report the first missing field in form order
		field := "birth_date"
		if in.FullName == "" {
			field = "full_name"
		}
		return time.Time{}, &ValidationError{Field: field, Err: fmt.Errorf("%w: %s", ErrMissingField, v.Errors.One())}
	}

	birthDate, err := classifier.ParseDate(in.BirthDate)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "birth_date", Err: fmt.Errorf("%w: %w", ErrInvalidField, err)}
	}

	if in.BirthTime != "" {
		if _, err := time.Parse(timeLayout, in.BirthTime); err != nil {
			return time.Time{}, &ValidationError{Field: "birth_time", Err: fmt.Errorf("%w: %w", ErrInvalidField, err)}
		}
	}

	return birthDate, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fieldLabel(field string) string {
	switch field {
	case "full_name":
		return "Full name"
	case "birth_date":
		return "Birth date"
	case "birth_time":
		return "Birth time"
	default:
		return field
	}
}
