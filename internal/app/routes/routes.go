package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/murad/unidir/internal/app/controllers"
	"github.com/murad/unidir/internal/app/models/dto"
	"github.com/murad/unidir/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public;
// mutating routes require the admin bearer token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	collegeController *controllers.CollegeController,
	departmentController *controllers.DepartmentController,
	programController *controllers.ProgramController,
	authMiddleware *middleware.AuthMiddleware,
	healthCheck gin.HandlerFunc,
) {
	router.GET("/health", healthCheck)

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authController.Token)
	}

	// --- Public read routes ---
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.GetAllUniversities)
		universities.GET("/:id", universityController.GetUniversityByID)
		universities.GET("/:id/details", universityController.GetUniversityDetails)
	}

	colleges := v1.Group("/colleges")
	{
		colleges.GET("", collegeController.GetAllColleges)
		colleges.GET("/:id", collegeController.GetCollegeByID)
		colleges.GET("/code/:code", collegeController.GetCollegeByCode)
		colleges.GET("/:id/details", collegeController.GetCollegeDetails)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
	}

	programs := v1.Group("/programs")
	{
		programs.GET("", programController.GetAllPrograms)
		programs.GET("/:id", programController.GetProgramByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		universitiesProtected := authenticated.Group("/universities")
		{
			universitiesProtected.POST("", universityController.CreateUniversity)
			universitiesProtected.PUT("/:id", universityController.UpdateUniversity)
			universitiesProtected.DELETE("/:id", universityController.DeleteUniversity)
			universitiesProtected.POST("/:id/details", universityController.AddUniversityDetail)
			universitiesProtected.DELETE("/:id/details/:detailId", universityController.DeleteUniversityDetail)
		}

		collegesProtected := authenticated.Group("/colleges")
		{
			collegesProtected.POST("", collegeController.CreateCollege)
			collegesProtected.PUT("/:id", collegeController.UpdateCollege)
			collegesProtected.DELETE("/:id", collegeController.DeleteCollege)
			collegesProtected.POST("/:id/details", collegeController.AddCollegeDetail)
			collegesProtected.DELETE("/:id/details/:detailId", collegeController.DeleteCollegeDetail)
		}

		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.POST("", departmentController.CreateDepartment)
			departmentsProtected.PUT("/:id", departmentController.UpdateDepartment)
			departmentsProtected.DELETE("/:id", departmentController.DeleteDepartment)
		}

		programsProtected := authenticated.Group("/programs")
		{
			programsProtected.POST("", programController.CreateProgram)
			programsProtected.PUT("/:id", programController.UpdateProgram)
			programsProtected.DELETE("/:id", programController.DeleteProgram)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Endpoint not found"),
			Timestamp: time.Now(),
		})
	})
}
