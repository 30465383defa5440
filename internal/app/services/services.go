package services

import (
	"github.com/murad/unidir/internal/app/repositories"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/pkg/auth"
)

// Services is a container for all application services
type Services struct {
	AuthService       AuthService
	UniversityService UniversityService
	CollegeService    CollegeService
	DepartmentService DepartmentService
	ProgramService    ProgramService
}

// NewServices wires services to their repositories and the shared cache.
func NewServices(repos *repositories.Repositories, directoryCache *cache.Client, jwtService *auth.JWTService, authConfig config.AuthConfig) *Services {
	return &Services{
		AuthService:       NewAuthService(jwtService, authConfig),
		UniversityService: NewUniversityService(repos.UniversityRepository, directoryCache),
		CollegeService:    NewCollegeService(repos.CollegeRepository, directoryCache),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.CollegeRepository, directoryCache),
		ProgramService:    NewProgramService(repos.ProgramRepository, repos.DepartmentRepository, directoryCache),
	}
}
