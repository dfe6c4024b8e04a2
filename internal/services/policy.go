package services

import (
	"github.com/justicelink/justicelink/internal/models"
)

// Access-control decision table, evaluated per protected operation from
// the caller's role and (when relevant) their per-case access level.
// The table is reproduced from the product's authorization matrix as-is.
// Known asymmetries are deliberate and flagged in DESIGN.md: view_only
// suffices for an advocate to change a case status, while read paths gate
// on grant existence rather than level.

// CanCreateCase: judges and advocates only.
func CanCreateCase(role models.Role) bool {
	return role == models.RoleJudge || role == models.RoleAdvocate
}

// CanViewCase: judges, or anyone holding any grant on the case.
func CanViewCase(role models.Role, hasGrant bool) bool {
	return role == models.RoleJudge || hasGrant
}

// CanUpdateCaseStatus: judges, or advocates holding sudo or view_only.
// Other roles cannot update status regardless of level.
func CanUpdateCaseStatus(role models.Role, level models.AccessLevel) bool {
	if role == models.RoleJudge {
		return true
	}
	return role == models.RoleAdvocate &&
		(level == models.AccessSudo || level == models.AccessViewOnly)
}

// CanViewPermissions: judges, or anyone holding any grant on the case.
func CanViewPermissions(role models.Role, hasGrant bool) bool {
	return role == models.RoleJudge || hasGrant
}

// CanGrantAccess: judges, or any holder of a sudo grant on the case.
func CanGrantAccess(role models.Role, level models.AccessLevel) bool {
	return role == models.RoleJudge || level == models.AccessSudo
}

// CanListDocuments: judges, or anyone holding any grant on the case.
func CanListDocuments(role models.Role, hasGrant bool) bool {
	return role == models.RoleJudge || hasGrant
}

// CanUploadDocument: judges, or holders of sudo or upload_only grants.
func CanUploadDocument(role models.Role, level models.AccessLevel) bool {
	return role == models.RoleJudge ||
		level == models.AccessSudo || level == models.AccessUploadOnly
}

// CanDownloadDocument: judges, or anyone holding any grant on the
// document's case, regardless of level.
func CanDownloadDocument(role models.Role, hasGrant bool) bool {
	return role == models.RoleJudge || hasGrant
}

// CanSummarizeCase gates the AI case summary like the other read paths.
func CanSummarizeCase(role models.Role, hasGrant bool) bool {
	return role == models.RoleJudge || hasGrant
}
