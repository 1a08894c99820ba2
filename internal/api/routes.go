package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/learnly/server/domain/entities"
	"github.com/learnly/server/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(
	e *echo.Echo,
	catalog *usecase.CatalogService,
	enrollment *usecase.EnrollmentService,
	accounts *usecase.AccountService,
	jwtSecret []byte,
	logger *zap.Logger,
) {
	validate := validator.New()

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "learnly-server",
		})
	})

	api := e.Group("/api")

	// User APIs
	api.POST("/user/register", func(c echo.Context) error {
		return registerUser(c, accounts, validate, logger)
	})
	api.POST("/user/login", func(c echo.Context) error {
		return loginUser(c, accounts, validate, logger)
	})

	// Course APIs
	courses := api.Group("/courses")
	courses.GET("", func(c echo.Context) error {
		return listCourses(c, catalog)
	})
	courses.GET("/:id", func(c echo.Context) error {
		return getCourse(c, catalog)
	})
	courses.POST("/:id/enroll", func(c echo.Context) error {
		return enrollCourse(c, enrollment)
	}, RequireUser(jwtSecret, logger))
}

func registerUser(c echo.Context, accounts *usecase.AccountService, validate *validator.Validate, logger *zap.Logger) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind register request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid registration data",
			Error:   err.Error(),
		})
	}

	if _, err := accounts.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		if entities.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error registering user",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Registered successfully"})
}

func loginUser(c echo.Context, accounts *usecase.AccountService, validate *validator.Validate, logger *zap.Logger) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Email and password are required",
		})
	}

	token, err := accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if entities.IsValidation(err) {
			// Do not reveal which of email or password was wrong.
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid email or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error logging in",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

func listCourses(c echo.Context, catalog *usecase.CatalogService) error {
	courses, err := catalog.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error fetching courses",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, courses)
}

func getCourse(c echo.Context, catalog *usecase.CatalogService) error {
	course, err := catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Course not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error fetching course",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, course)
}

func enrollCourse(c echo.Context, enrollment *usecase.EnrollmentService) error {
	userID, _ := c.Get(userIDKey).(string)

	err := enrollment.Enroll(c.Request().Context(), c.Param("id"), userID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, MessageResponse{Message: "Enrolled successfully"})
	case errors.Is(err, entities.ErrCourseNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Course not found",
		})
	case errors.Is(err, entities.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, entities.ErrAlreadyEnrolled):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Already enrolled in this course",
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error enrolling in course",
			Error:   err.Error(),
		})
	}
}
