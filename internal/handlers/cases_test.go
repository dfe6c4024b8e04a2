package handlers_test

import (
	"net/http"
	"testing"

	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/tests/helpers"
)

func TestCreateCaseByRole(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	helpers.SeedUser(t, ta.DB, "adv@firm.com", models.RoleAdvocate)
	helpers.SeedUser(t, ta.DB, "agency@gov.org", models.RoleGovernmentAgency)
	helpers.SeedUser(t, ta.DB, "intel@firm.com", models.RolePrivateIntel)

	allowed := map[string]int{
		"judge@court.gov": http.StatusCreated,
		"adv@firm.com":    http.StatusCreated,
		"agency@gov.org":  http.StatusForbidden,
		"intel@firm.com":  http.StatusForbidden,
	}
	for email, want := range allowed {
		cookie := ta.login(t, email)
		resp := ta.request(t, http.MethodPost, "/api/cases",
			map[string]string{"case_name": "Case by " + email}, cookie)
		if resp.StatusCode != want {
			t.Errorf("%s: expected %d, got %d", email, want, resp.StatusCode)
		}
	}
}

func TestCreateCaseRequiresName(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	cookie := ta.login(t, "judge@court.gov")

	resp := ta.request(t, http.MethodPost, "/api/cases", map[string]string{}, cookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestGetCaseAccess(t *testing.T) {
	ta := newTestApp(t)
	judgeEmail := "judge@court.gov"
	judgeID := helpers.SeedUser(t, ta.DB, judgeEmail, models.RoleJudge)
	grantedID := helpers.SeedUser(t, ta.DB, "granted@firm.com", models.RoleAdvocate)
	helpers.SeedUser(t, ta.DB, "outsider@firm.com", models.RoleAdvocate)

	caseID := helpers.SeedCase(t, ta.DB, "State v. Doe", judgeID)
	helpers.SeedGrant(t, ta.DB, caseID, grantedID, models.AccessViewOnly)

	// Judge without a grant
	cookie := ta.login(t, judgeEmail)
	resp := ta.request(t, http.MethodGet, "/api/case/"+caseID, nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Judge: expected 200, got %d", resp.StatusCode)
	}

	// Advocate with a grant
	cookie = ta.login(t, "granted@firm.com")
	resp = ta.request(t, http.MethodGet, "/api/case/"+caseID, nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Granted advocate: expected 200, got %d", resp.StatusCode)
	}

	// Advocate without a grant
	cookie = ta.login(t, "outsider@firm.com")
	resp = ta.request(t, http.MethodGet, "/api/case/"+caseID, nil, cookie)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Outsider: expected 403, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	helpers.DecodeJSON(t, resp, &body)
	if body["message"] != "You do not have access to this case" {
		t.Errorf("Unexpected forbidden message: %v", body["message"])
	}
}

func TestListCasesScoped(t *testing.T) {
	ta := newTestApp(t)
	judgeID := helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	advID := helpers.SeedUser(t, ta.DB, "adv@firm.com", models.RoleAdvocate)

	helpers.SeedCase(t, ta.DB, "Judge Case", judgeID)
	helpers.SeedCase(t, ta.DB, "Advocate Case", advID)

	cookie := ta.login(t, "judge@court.gov")
	resp := ta.request(t, http.MethodGet, "/api/cases", nil, cookie)
	var judgeCases []models.Case
	helpers.DecodeJSON(t, resp, &judgeCases)
	if len(judgeCases) != 2 {
		t.Errorf("Judge: expected 2 cases, got %d", len(judgeCases))
	}

	cookie = ta.login(t, "adv@firm.com")
	resp = ta.request(t, http.MethodGet, "/api/cases", nil, cookie)
	var advCases []models.Case
	helpers.DecodeJSON(t, resp, &advCases)
	if len(advCases) != 1 {
		t.Errorf("Advocate: expected 1 case, got %d", len(advCases))
	}
}

func TestUpdateStatusPolicy(t *testing.T) {
	ta := newTestApp(t)
	judgeID := helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	viewerID := helpers.SeedUser(t, ta.DB, "viewer@firm.com", models.RoleAdvocate)
	uploaderID := helpers.SeedUser(t, ta.DB, "uploader@firm.com", models.RoleAdvocate)

	caseID := helpers.SeedCase(t, ta.DB, "State v. Doe", judgeID)
	helpers.SeedGrant(t, ta.DB, caseID, viewerID, models.AccessViewOnly)
	helpers.SeedGrant(t, ta.DB, caseID, uploaderID, models.AccessUploadOnly)

	// view_only advocate may update status
	cookie := ta.login(t, "viewer@firm.com")
	resp := ta.request(t, http.MethodPut, "/api/case/"+caseID+"/status",
		map[string]string{"status": "In Review"}, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("view_only advocate: expected 200, got %d: %s", resp.StatusCode, helpers.ReadBody(t, resp))
	}

	// upload_only advocate may not
	cookie = ta.login(t, "uploader@firm.com")
	resp = ta.request(t, http.MethodPut, "/api/case/"+caseID+"/status",
		map[string]string{"status": "Closed"}, cookie)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("upload_only advocate: expected 403, got %d", resp.StatusCode)
	}

	// status survives the rejected attempt
	cookie = ta.login(t, "judge@court.gov")
	resp = ta.request(t, http.MethodGet, "/api/case/"+caseID, nil, cookie)
	var kase models.Case
	helpers.DecodeJSON(t, resp, &kase)
	if kase.Status != "In Review" {
		t.Errorf("Expected status In Review, got %q", kase.Status)
	}
}

func TestUpdateStatusUnknownCase(t *testing.T) {
	ta := newTestApp(t)
	helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	cookie := ta.login(t, "judge@court.gov")

	resp := ta.request(t, http.MethodPut, "/api/case/no-such-case/status",
		map[string]string{"status": "Closed"}, cookie)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for unknown case, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	helpers.DecodeJSON(t, resp, &body)
	if body["message"] != "Failed to update case status" {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

func TestSummarize(t *testing.T) {
	ta := newTestApp(t)
	judgeID := helpers.SeedUser(t, ta.DB, "judge@court.gov", models.RoleJudge)
	helpers.SeedUser(t, ta.DB, "outsider@firm.com", models.RoleAdvocate)

	caseID := helpers.SeedCase(t, ta.DB, "State v. Doe", judgeID)

	cookie := ta.login(t, "judge@court.gov")
	resp := ta.request(t, http.MethodGet, "/api/case/"+caseID+"/summary", nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	helpers.DecodeJSON(t, resp, &body)
	if body["summary"] != "No documents found for this case." {
		t.Errorf("Unexpected summary: %q", body["summary"])
	}

	cookie = ta.login(t, "outsider@firm.com")
	resp = ta.request(t, http.MethodGet, "/api/case/"+caseID+"/summary", nil, cookie)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Outsider: expected 403, got %d", resp.StatusCode)
	}
}
