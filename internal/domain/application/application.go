package application

import "time"

// FlagYes is the affirmative value of the Yes/No form flags.
const FlagYes = "Yes"

// Application is one submitted rental-assistance record. ID and SubmittedAt
// are assigned by the store; records are never mutated after insert.
type Application struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	DateOfBirth       string    `json:"dob"`
	Gender            string    `json:"gender"`
	Age               *int64    `json:"age"`
	City              string    `json:"city"`
	SSN               string    `json:"ssn"`
	PastDueRent       *float64  `json:"past_due_rent"`
	AppliedBefore     string    `json:"applied_before"`
	ReceivingSS       string    `json:"receiving_ss"`
	VerifiedIdentity  string    `json:"verified_idme"`
	MothersMaidenName *string   `json:"mothers_maiden_name"`
	MothersFullName   *string   `json:"mothers_full_name"`
	FathersFullName   *string   `json:"fathers_full_name"`
	PlaceOfBirth      *string   `json:"place_of_birth"`
	CityOfBirth       *string   `json:"city_of_birth"`
	LicenseFront      *string   `json:"dl_front"`
	LicenseBack       *string   `json:"dl_back"`
	SubmittedAt       time.Time `json:"submitted_at"`
}
