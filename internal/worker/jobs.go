package worker

import (
	"context"
	"time"

	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/pkg/logger"
)

// RefreshListingCache repopulates the listing cache keys from the database
// so reads stay warm even across invalidations.
func (m *Manager) RefreshListingCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	universities, err := m.repos.UniversityRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to load universities")
	} else if err := m.cache.SetJSON(ctx, cache.KeyUniversities, universities); err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to store universities")
	}

	colleges, err := m.repos.CollegeRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to load colleges")
	} else if err := m.cache.SetJSON(ctx, cache.KeyColleges, colleges); err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to store colleges")
	}

	departments, err := m.repos.DepartmentRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to load departments")
	} else if err := m.cache.SetJSON(ctx, cache.KeyDepartments, departments); err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to store departments")
	}

	programs, err := m.repos.ProgramRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to load programs")
	} else if err := m.cache.SetJSON(ctx, cache.KeyPrograms, programs); err != nil {
		logger.Error().Err(err).Msg("Cache refresh: failed to store programs")
	}

	logger.Info().
		Int("universities", len(universities)).
		Int("colleges", len(colleges)).
		Int("departments", len(departments)).
		Int("programs", len(programs)).
		Msg("Listing cache refreshed")
}

// capacityWarnRatio is the fill level at which the remaining numbering
// range is worth an operator warning.
const capacityWarnRatio = 0.9

// CheckNumberingCapacity warns when an entity's numbering range is close
// to exhaustion.
func (m *Manager) CheckNumberingCapacity() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	collegeScheme := m.repos.CollegeRepository.Scheme()
	colleges, err := m.repos.CollegeRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Capacity check: failed to load colleges")
	} else {
		maxCode := 0
		for _, c := range colleges {
			if c.Code > maxCode {
				maxCode = c.Code
			}
		}
		warnIfNearCapacity("colleges", maxCode, collegeScheme.Max)
	}

	programScheme := m.repos.ProgramRepository.Scheme()
	programs, err := m.repos.ProgramRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Capacity check: failed to load programs")
	} else {
		maxNumber := 0
		for _, p := range programs {
			if p.Number > maxNumber {
				maxNumber = p.Number
			}
		}
		warnIfNearCapacity("programs", maxNumber, programScheme.Max)
	}

	departmentScheme := m.repos.DepartmentRepository.Scheme()
	departments, err := m.repos.DepartmentRepository.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Capacity check: failed to load departments")
	} else {
		// Department numbers are scoped per college, check each scope.
		maxByScope := make(map[int64]int)
		for _, d := range departments {
			scope := int64(0)
			if d.CollegeID != nil {
				scope = *d.CollegeID
			}
			if d.DepNo > maxByScope[scope] {
				maxByScope[scope] = d.DepNo
			}
		}
		for scope, maxNo := range maxByScope {
			if float64(maxNo) >= capacityWarnRatio*float64(departmentScheme.Max) {
				logger.Warn().
					Int64("college_id", scope).
					Int("max_assigned", maxNo).
					Int("range_max", departmentScheme.Max).
					Msg("Department numbering scope near capacity")
			}
		}
	}
}

func warnIfNearCapacity(entity string, maxAssigned, rangeMax int) {
	if float64(maxAssigned) >= capacityWarnRatio*float64(rangeMax) {
		logger.Warn().
			Str("entity", entity).
			Int("max_assigned", maxAssigned).
			Int("range_max", rangeMax).
			Msg("Numbering range near capacity")
	}
}
