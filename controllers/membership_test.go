package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateMembership_RejectsSecondActiveMembership(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	memberID := uuid.New()
	planID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(memberID.String(), "Jane", "Doe", "jane@example.com"))

	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "duration_months", "is_active"}).
			AddRow(planID.String(), "Premium", 79.0, 1, true))

	// An active membership already exists for this member
	mock.ExpectQuery(`SELECT \* FROM "member_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "status"}).
			AddRow(uuid.New().String(), memberID.String(), "active"))

	body := `{"memberId": "` + memberID.String() + `", "planId": "` + planID.String() + `"}`
	c, w := newTestContext("POST", "/api/memberships", body)

	CreateMembership(c)

	assertStatus(t, w, http.StatusConflict)
	assert.Contains(t, w.Body.String(), "already has an active membership")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMembership_ComputesAndPersistsEndDate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	memberID := uuid.New()
	planID := uuid.New()
	startDate := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(memberID.String(), "Jane", "Doe", "jane@example.com"))

	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "duration_months", "is_active"}).
			AddRow(planID.String(), "Monthly", 49.0, 1, true))

	// No existing active membership
	mock.ExpectQuery(`SELECT \* FROM "member_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectQuery(`INSERT INTO "member_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	body := `{"memberId": "` + memberID.String() + `", "planId": "` + planID.String() +
		`", "startDate": "` + startDate.Format(time.RFC3339) + `"}`
	c, w := newTestContext("POST", "/api/memberships", body)

	CreateMembership(c)

	assertStatus(t, w, http.StatusCreated)

	var created struct {
		EndDate time.Time `json:"EndDate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Jan 31 + 1 month clamps to the last day of February (2024 is a leap year)
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.True(t, created.EndDate.Equal(want), "end date = %v, want %v", created.EndDate, want)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMembership_MissingRequiredFields(t *testing.T) {
	c, w := newTestContext("POST", "/api/memberships", `{"planId": "`+uuid.New().String()+`"}`)

	CreateMembership(c)

	assertStatus(t, w, http.StatusBadRequest)
}
