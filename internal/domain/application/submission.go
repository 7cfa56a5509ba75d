package application

import (
	"regexp"
	"strconv"
	"strings"

	"rentaid/internal/common"
)

// Form field names as submitted by the intake form.
const (
	FieldFullName          = "full_name"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldDateOfBirth       = "dob"
	FieldGender            = "gender"
	FieldAge               = "age"
	FieldCity              = "city"
	FieldSSN               = "ssn"
	FieldPastDueRent       = "past_due_rent"
	FieldAppliedBefore     = "applied_before"
	FieldReceivingSS       = "receiving_ss"
	FieldVerifiedIdentity  = "verified_idme"
	FieldMothersMaidenName = "mothers_maiden_name"
	FieldMothersFullName   = "mothers_full_name"
	FieldFathersFullName   = "fathers_full_name"
	FieldPlaceOfBirth      = "place_of_birth"
	FieldCityOfBirth       = "city_of_birth"
)

// RequiredFields is the canonical required set; every one must be non-empty
// after trimming or the submission is rejected as a whole.
var RequiredFields = []string{
	FieldFullName,
	FieldPhone,
	FieldEmail,
	FieldDateOfBirth,
	FieldGender,
	FieldAge,
	FieldCity,
	FieldSSN,
	FieldPastDueRent,
	FieldAppliedBefore,
	FieldReceivingSS,
	FieldVerifiedIdentity,
}

// ExtendedFields is the optional biographical group; absent values are
// stored as NULL.
var ExtendedFields = []string{
	FieldMothersMaidenName,
	FieldMothersFullName,
	FieldFathersFullName,
	FieldPlaceOfBirth,
	FieldCityOfBirth,
}

var ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// Submission is the raw field set of one intake form post, plus the stored
// filenames of any uploaded license images.
type Submission struct {
	Fields       map[string]string
	LicenseFront *string
	LicenseBack  *string
}

// Validate runs the required-field pass and normalizes values into an
// Application ready for insertion. All missing fields are reported in a
// single validation error. SSN format is deliberately not checked here;
// that advisory pass is SSNFormatValid.
func (s Submission) Validate() (*Application, error) {
	values := make(map[string]string, len(s.Fields))
	for name, raw := range s.Fields {
		values[name] = strings.TrimSpace(raw)
	}

	var missing []string
	for _, name := range RequiredFields {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		fields := make(map[string]string, len(missing))
		for _, name := range missing {
			fields[name] = "required"
		}
		return nil, common.NewValidationError("missing required fields: "+strings.Join(missing, ", "), fields)
	}

	return &Application{
		FullName:          values[FieldFullName],
		Phone:             values[FieldPhone],
		Email:             strings.ToLower(values[FieldEmail]),
		DateOfBirth:       values[FieldDateOfBirth],
		Gender:            values[FieldGender],
		Age:               parseAge(values[FieldAge]),
		City:              values[FieldCity],
		SSN:               values[FieldSSN],
		PastDueRent:       parseAmount(values[FieldPastDueRent]),
		AppliedBefore:     values[FieldAppliedBefore],
		ReceivingSS:       values[FieldReceivingSS],
		VerifiedIdentity:  values[FieldVerifiedIdentity],
		MothersMaidenName: optional(values[FieldMothersMaidenName]),
		MothersFullName:   optional(values[FieldMothersFullName]),
		FathersFullName:   optional(values[FieldFathersFullName]),
		PlaceOfBirth:      optional(values[FieldPlaceOfBirth]),
		CityOfBirth:       optional(values[FieldCityOfBirth]),
		LicenseFront:      s.LicenseFront,
		LicenseBack:       s.LicenseBack,
	}, nil
}

// SSNFormatValid reports whether the stored SSN matches the canonical
// NNN-NN-NNNN shape. A mismatch is logged by the caller, never rejected.
func (a *Application) SSNFormatValid() bool {
	return ssnPattern.MatchString(a.SSN)
}

// Unparseable numeric input is stored as NULL rather than rejected,
// matching the permissive intake behavior.
func parseAge(value string) *int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseAmount(value string) *float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
