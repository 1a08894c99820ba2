package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/learnly/server/adapters"
	"github.com/learnly/server/domain/entities"
	"github.com/learnly/server/internal/auth"
	"github.com/learnly/server/usecase"
)

var testSecret = []byte("test-secret")

type fixture struct {
	echo    *echo.Echo
	courses *adapters.MemoryCourseRepository
	users   *adapters.MemoryUserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	courses := adapters.NewMemoryCourseRepository()
	users := adapters.NewMemoryUserRepository()

	catalog := usecase.NewCatalogService(courses, logger)
	enrollment := usecase.NewEnrollmentService(courses, users, logger)
	accounts := usecase.NewAccountService(users, testSecret, logger)

	e := echo.New()
	InitRoutes(e, catalog, enrollment, accounts, testSecret, logger)

	return &fixture{echo: e, courses: courses, users: users}
}

func (f *fixture) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedCourse(t *testing.T) *entities.Course {
	t.Helper()

	course := &entities.Course{
		Title:       "Introduction to Go",
		Description: "Learn the basics of Go",
		Instructor:  "Rob Pike",
		Lessons: []entities.Lesson{
			{Title: "Packages", Content: "How packages work"},
		},
	}
	if err := f.courses.Create(context.Background(), course); err != nil {
		t.Fatalf("Failed to create course: %v", err)
	}
	return course
}

func (f *fixture) seedUserToken(t *testing.T) string {
	t.Helper()

	user := entities.NewUser("alice", "alice@example.com", "hashed-password")
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	token, err := auth.GenerateUserToken(testSecret, user.ID.Hex())
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func TestListCourses(t *testing.T) {
	f := newFixture(t)
	course := f.seedCourse(t)

	rec := f.request(t, http.MethodGet, "/api/courses", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var got []entities.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(got))
	}
	if got[0].Title != course.Title {
		t.Errorf("Expected title %q, got %q", course.Title, got[0].Title)
	}
}

func TestGetCourse(t *testing.T) {
	f := newFixture(t)
	course := f.seedCourse(t)

	rec := f.request(t, http.MethodGet, "/api/courses/"+course.ID.Hex(), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var got entities.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.ID != course.ID {
		t.Errorf("Expected id %s, got %s", course.ID.Hex(), got.ID.Hex())
	}
}

func TestGetCourseNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/courses/64b000000000000000000000", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Message != "Course not found" {
		t.Errorf("Expected message %q, got %q", "Course not found", resp.Message)
	}
}

func TestEnrollEndpoint(t *testing.T) {
	f := newFixture(t)
	course := f.seedCourse(t)
	token := f.seedUserToken(t)

	path := "/api/courses/" + course.ID.Hex() + "/enroll"

	t.Run("RequiresToken", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("RejectsGarbageToken", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, path, "", "not.a.token")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("Enrolls", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, path, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp MessageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Message != "Enrolled successfully" {
			t.Errorf("Expected message %q, got %q", "Enrolled successfully", resp.Message)
		}
	})

	t.Run("RejectsDuplicate", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, path, "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rec.Code)
		}

		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Message != "Already enrolled in this course" {
			t.Errorf("Expected message %q, got %q", "Already enrolled in this course", resp.Message)
		}
	})

	t.Run("CourseNotFound", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/courses/64b000000000000000000000/enroll", "", token)
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("UserGone", func(t *testing.T) {
		// Token references a user no longer present in the store
		orphan, err := auth.GenerateUserToken(testSecret, "64b0000000000000000000ff")
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		rec := f.request(t, http.MethodPost, path, "", orphan)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", rec.Code)
		}

		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Message != "User not found" {
			t.Errorf("Expected message %q, got %q", "User not found", resp.Message)
		}
	})
}

func TestRegisterAndLoginEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/api/user/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret-pass"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	t.Run("DuplicateEmail", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/user/register",
			`{"username":"bob","email":"alice@example.com","password":"another-pass"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("ShortUsername", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/user/register",
			`{"username":"al","email":"al@example.com","password":"s3cret-pass"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("Login", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/user/login",
			`{"email":"alice@example.com","password":"s3cret-pass"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		claims, err := auth.ValidateToken(testSecret, resp.Token)
		if err != nil {
			t.Fatalf("Failed to validate token: %v", err)
		}
		if claims.UserID == "" {
			t.Error("Expected user id in token")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/user/login",
			`{"email":"alice@example.com","password":"wrong-pass"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// brokenCourseRepository fails every operation, standing in for an
// unreachable store.
type brokenCourseRepository struct{}

func (brokenCourseRepository) Create(ctx context.Context, course *entities.Course) error {
	return errors.New("store unavailable")
}

func (brokenCourseRepository) GetByID(ctx context.Context, id string) (*entities.Course, error) {
	return nil, errors.New("store unavailable")
}

func (brokenCourseRepository) GetByTitle(ctx context.Context, title string) (*entities.Course, error) {
	return nil, errors.New("store unavailable")
}

func (brokenCourseRepository) GetAll(ctx context.Context) ([]*entities.Course, error) {
	return nil, errors.New("store unavailable")
}

func TestCourseEndpointsStoreError(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	users := adapters.NewMemoryUserRepository()

	catalog := usecase.NewCatalogService(brokenCourseRepository{}, logger)
	enrollment := usecase.NewEnrollmentService(brokenCourseRepository{}, users, logger)
	accounts := usecase.NewAccountService(users, testSecret, logger)

	e := echo.New()
	InitRoutes(e, catalog, enrollment, accounts, testSecret, logger)
	f := &fixture{echo: e, users: users}

	token := f.seedUserToken(t)

	cases := []struct {
		name    string
		method  string
		path    string
		token   string
		message string
	}{
		{"List", http.MethodGet, "/api/courses", "", "Error fetching courses"},
		{"Get", http.MethodGet, "/api/courses/64b000000000000000000000", "", "Error fetching course"},
		{"Enroll", http.MethodPost, "/api/courses/64b000000000000000000000/enroll", token, "Error enrolling in course"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.request(t, tc.method, tc.path, "", tc.token)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("Expected status 500, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message %q, got %q", tc.message, resp.Message)
			}
			if resp.Error == "" {
				t.Error("Expected error detail on store failure")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
}
