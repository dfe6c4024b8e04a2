package handlers_test

import (
	"net/http"
	"testing"

	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/tests/helpers"
)

func TestGetUser(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	advID := helpers.SeedUser(t, ta.DB, "adv@firm.com", models.RoleAdvocate)

	cookie := ta.login(t, "judge@court.gov")

	resp := ta.request(t, http.MethodGet, "/api/user/"+advID, nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var user models.User
	helpers.DecodeJSON(t, resp, &user)
	if user.UserID != advID {
		t.Errorf("Expected user %s, got %s", advID, user.UserID)
	}
	if user.HashedPassword != "" {
		t.Error("Password hash leaked in user response")
	}

	resp = ta.request(t, http.MethodGet, "/api/user/no-such-user", nil, cookie)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown user, got %d", resp.StatusCode)
	}
}

func TestSearchUsers(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "alice@firm.com", models.RoleAdvocate)
	helpers.SeedUser(t, ta.DB, "bob@firm.com", models.RoleAdvocate)
	helpers.SeedUser(t, ta.DB, "carol@court.gov", models.RoleJudge)

	cookie := ta.login(t, "carol@court.gov")

	resp := ta.request(t, http.MethodGet, "/api/users/search?email=firm", nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var users []models.User
	helpers.DecodeJSON(t, resp, &users)
	if len(users) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(users))
	}
}

func TestSearchUsersShortQuery(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)

	cookie := ta.login(t, "judge@court.gov")

	for _, query := range []string{"", "ab"} {
		resp := ta.request(t, http.MethodGet, "/api/users/search?email="+query, nil, cookie)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Query %q: expected 400, got %d", query, resp.StatusCode)
		}
	}
}
