package jetlag

import (
	"strings"

	"github.com/jetlaghelper/api/internal/validate"
)

// TripRequest is the wire shape of a calculator submission.
//
// DepartureLocalISO and ArrivalLocalISO are required but do not feed the
// estimate yet; flight duration is not part of the model.
type TripRequest struct {
	OriginTz          string `json:"originTz" validate:"required"`
	DestTz            string `json:"destTz" validate:"required"`
	DepartureLocalISO string `json:"departureLocalISO" validate:"required"`
	ArrivalLocalISO   string `json:"arrivalLocalISO" validate:"required"`
	SleptOnFlight     *bool  `json:"sleptOnFlight" validate:"required"`
	Age               string `json:"age" validate:"required"`
}

// ValidationError reports input the estimator cannot run on.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

var inputs = validate.New()

// Validate checks that every required field is present.
func (r TripRequest) Validate() error {
	err := inputs.Struct(r)
	if err == nil {
		return nil
	}
	failures := validate.Failures(err)
	if failures == nil {
		return err
	}
	fields := make([]string, 0, len(failures))
	for _, f := range failures {
		fields = append(fields, f.Field)
	}
	return &ValidationError{Fields: fields}
}

// Input resolves zone names and the age band. Call Validate first; a nil
// SleptOnFlight reads as false.
func (r TripRequest) Input() TripInput {
	return TripInput{
		OriginOffset:  ZoneOffset(r.OriginTz),
		DestOffset:    ZoneOffset(r.DestTz),
		SleptOnFlight: r.SleptOnFlight != nil && *r.SleptOnFlight,
		Age:           ParseAgeBand(r.Age),
	}
}

// Calculate validates a submission and estimates recovery for it.
func Calculate(r TripRequest) (RecoveryResult, error) {
	if err := r.Validate(); err != nil {
		return RecoveryResult{}, err
	}
	return Estimate(r.Input()), nil
}
