package application

import "context"

// Stats is the aggregate snapshot over the full applications table.
type Stats struct {
	TotalApplications       int64   `json:"total_applications"`
	TotalRentOwed           float64 `json:"total_rent_owed"`
	AvgRentOwed             float64 `json:"avg_rent_owed"`
	ReceivingSocialSecurity int64   `json:"receiving_social_security"`
}

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	Search(ctx context.Context, term string) ([]Application, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*Stats, error)
}
