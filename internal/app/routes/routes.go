// Package routes wires controllers onto the HTTP router
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Admin   *controllers.AdminController
	User    *controllers.UserController
	Report  *controllers.ReportController
	Contact *controllers.ContactController
}

// HealthCheck reports service liveness, including database reachability
type HealthCheck func(c *gin.Context) error

// SetupRoutes mounts all API routes onto the engine
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMw *middleware.AuthMiddleware, health HealthCheck) {
	router.GET("/health", func(c *gin.Context) {
		if err := health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("service unavailable"))
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)

		authed := authGroup.Group("", authMw.AnyRole())
		{
			authed.POST("/change-password", ctrl.Auth.ChangePassword)
			authed.GET("/profile", ctrl.Auth.GetProfile)
			authed.PUT("/profile", ctrl.Auth.UpdateProfile)
		}
	}

	adminGroup := api.Group("/admin", authMw.AdminOnly())
	{
		adminGroup.GET("/dashboard", ctrl.Admin.Dashboard)

		adminGroup.GET("/students", ctrl.Admin.ListStudents)
		adminGroup.POST("/students", ctrl.Admin.CreateStudent)
		adminGroup.GET("/students/:id", ctrl.Admin.GetStudent)
		adminGroup.PUT("/students/:id", ctrl.Admin.UpdateStudent)
		adminGroup.DELETE("/students/:id", ctrl.Admin.DeleteStudent)
		adminGroup.PUT("/students/:id/status", ctrl.Admin.SetStatus)

		adminGroup.GET("/students/:id/hall-ticket", ctrl.Report.HallTicket)
		adminGroup.GET("/students/:id/result", ctrl.Report.Result)
		adminGroup.GET("/students/:id/fee-structure", ctrl.Report.FeeStructure)

		adminGroup.GET("/users", ctrl.User.ListUsers)
		adminGroup.POST("/users", ctrl.User.CreateUser)
		adminGroup.GET("/users/:id", ctrl.User.GetUser)
		adminGroup.PUT("/users/:id", ctrl.User.UpdateUser)
		adminGroup.DELETE("/users/:id", ctrl.User.DeleteUser)
	}

	studentGroup := api.Group("/student", authMw.StudentOnly())
	{
		studentGroup.GET("/profile", ctrl.Student.GetProfile)
		studentGroup.PUT("/profile", ctrl.Student.UpdateProfile)
		studentGroup.GET("/academic-record", ctrl.Student.GetAcademicRecord)
		studentGroup.GET("/personal-info", ctrl.Student.GetPersonalInfo)
		studentGroup.GET("/documents", ctrl.Student.GetDocuments)
		studentGroup.GET("/status", ctrl.Student.GetStatus)
	}

	api.POST("/contact", ctrl.Contact.Submit)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("route not found"))
	})
}
