package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murad/unidir/internal/config"
)

// maxCodeAttempts bounds the retry loop when two creations race for the
// same code. The unique constraint arbitrates; the loser recomputes.
const maxCodeAttempts = 5

// Repositories is a container for all data access repositories
type Repositories struct {
	UniversityRepository *UniversityRepository
	CollegeRepository    *CollegeRepository
	DepartmentRepository *DepartmentRepository
	ProgramRepository    *ProgramRepository
}

// NewRepositories creates repositories bound to the shared pool, with the
// numbering schemes taken from config.
func NewRepositories(db *pgxpool.Pool, cfg *config.Config) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(db),
		CollegeRepository:    NewCollegeRepository(db, cfg.Numbering.College.Scheme()),
		DepartmentRepository: NewDepartmentRepository(db, cfg.Numbering.Department.Scheme()),
		ProgramRepository:    NewProgramRepository(db, cfg.Numbering.Program.Scheme()),
	}
}
