package app

import (
	"context"
	"log/slog"

	"rentaid/internal/domain/application"
)

// FileRemover cleans up stored uploads whose application row was never
// written.
type FileRemover interface {
	Remove(name string)
}

type IntakeService struct {
	repo   application.Repository
	files  FileRemover
	logger *slog.Logger
}

func NewIntakeService(repo application.Repository, files FileRemover, logger *slog.Logger) *IntakeService {
	return &IntakeService{repo: repo, files: files, logger: logger}
}

// Submit validates a submission and persists it. Uploaded files have
// already been written by the handler; on any failure here they are removed
// best-effort so a rejected submission leaves nothing behind.
func (s *IntakeService) Submit(ctx context.Context, sub application.Submission) (*application.Application, error) {
	app, err := sub.Validate()
	if err != nil {
		s.removeFiles(sub.LicenseFront, sub.LicenseBack)
		return nil, err
	}
	if !app.SSNFormatValid() {
		// Advisory only: the record is accepted regardless.
		s.logger.Warn("ssn does not match expected NNN-NN-NNNN format")
	}
	created, err := s.repo.Create(ctx, *app)
	if err != nil {
		s.logger.Error("failed to save application", "error", err)
		s.removeFiles(sub.LicenseFront, sub.LicenseBack)
		return nil, err
	}
	s.logger.Info("application saved", "application_id", created.ID)
	return created, nil
}

func (s *IntakeService) removeFiles(names ...*string) {
	if s.files == nil {
		return
	}
	for _, name := range names {
		if name != nil {
			s.files.Remove(*name)
		}
	}
}
