package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateMember_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blank first name", `{"firstName": "", "lastName": "Doe", "email": "a@b.com"}`},
		{"missing last name", `{"firstName": "Jane", "email": "a@b.com"}`},
		{"missing email", `{"firstName": "Jane", "lastName": "Doe"}`},
		{"malformed email", `{"firstName": "Jane", "lastName": "Doe", "email": "not-an-email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext("POST", "/api/members", tt.body)

			CreateMember(c)

			// Rejected before any storage call
			assertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestCreateMember_StartDateWithoutPlan(t *testing.T) {
	body := `{"firstName": "Jane", "lastName": "Doe", "email": "a@b.com", "startDate": "2024-06-01T00:00:00Z"}`
	c, w := newTestContext("POST", "/api/members", body)

	CreateMember(c)

	assertStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, w.Body.String(), "planId")
}

func TestCreateMember_Success(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// Email uniqueness check finds nothing
	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	body := `{"firstName": "Jane", "lastName": "Doe", "email": "a@b.com"}`
	c, w := newTestContext("POST", "/api/members", body)

	CreateMember(c)

	assertStatus(t, w, http.StatusCreated)

	var resp struct {
		Member struct {
			ID uuid.UUID `json:"ID"`
		} `json:"member"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	assert.NotEqual(t, uuid.Nil, resp.Member.ID, "expected a generated identifier")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMember_BlockedByActiveMembership(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	memberID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(memberID.String(), "Jane", "Doe", "a@b.com"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "member_memberships"`).
		WithArgs(memberID, "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	c, w := newTestContext("DELETE", "/api/members/"+memberID.String(), "")
	c.Params = gin.Params{{Key: "id", Value: memberID.String()}}

	DeleteMember(c)

	assertStatus(t, w, http.StatusConflict)
	assert.Contains(t, w.Body.String(), "active membership")
	assert.NoError(t, mock.ExpectationsWereMet())
}
