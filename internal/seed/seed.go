package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/murad/unidir/internal/app/models"
	appRepos "github.com/murad/unidir/internal/app/repositories"
	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

// CreateDefaultData creates a starter university with a couple of colleges
// and departments if the directory is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool, cfg)

	universities, err := repos.UniversityRepository.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(universities) > 0 {
		lgr.Debug().Msg("Directory already has data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default directory data...")
	var finalErr error

	location := "Baghdad"
	university := &appModels.University{Name: "University of Baghdad", Location: &location}
	if _, err := repos.UniversityRepository.Create(ctx, university); err != nil &&
		!errors.Is(err, apperrors.ErrUniversityAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default university")
		finalErr = errors.Join(finalErr, err)
	}

	engineering := &appModels.College{Name: "College of Engineering"}
	if _, err := repos.CollegeRepository.Create(ctx, engineering); err != nil {
		lgr.Error().Err(err).Msg("Error creating engineering college")
		finalErr = errors.Join(finalErr, err)
	}

	science := &appModels.College{Name: "College of Science"}
	if _, err := repos.CollegeRepository.Create(ctx, science); err != nil {
		lgr.Error().Err(err).Msg("Error creating science college")
		finalErr = errors.Join(finalErr, err)
	}

	if engineering.ID > 0 {
		for _, name := range []string{"Civil Engineering", "Computer Engineering"} {
			department := &appModels.Department{
				Name:      name,
				Type:      appModels.DepartmentAcademic,
				CollegeID: &engineering.ID,
			}
			if _, err := repos.DepartmentRepository.Create(ctx, department); err != nil {
				lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	registrar := &appModels.Department{
		Name: "Registration and Student Affairs",
		Type: appModels.DepartmentAdministrative,
	}
	if _, err := repos.DepartmentRepository.Create(ctx, registrar); err != nil {
		lgr.Error().Err(err).Msg("Error creating default administrative department")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default directory data created")
	}
	return finalErr
}
