package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pmadriaga/studorg/go-api-server/internal/member"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"github.com/pmadriaga/studorg/go-api-server/internal/report"
	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for report handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	reportRepo := report.NewReportRepository()
	reportService := report.NewReportService(db, reportRepo)
	reportHandler := report.NewReportHandler(reportService)

	router := testutil.SetupTestRouter()
	router.GET("/api/reports/1", reportHandler.OrganizationMembers)
	router.GET("/api/reports/2", reportHandler.UnpaidByStudent)
	router.GET("/api/reports/3", reportHandler.StudentUnpaidFees)
	router.GET("/api/reports/4", reportHandler.ExecutiveCommittee)
	router.GET("/api/reports/5", reportHandler.RoleHistory)
	router.GET("/api/reports/6", reportHandler.LatePayments)
	router.GET("/api/reports/7", reportHandler.StatusShares)
	router.GET("/api/reports/8", reportHandler.Alumni)
	router.GET("/api/reports/9", reportHandler.FeeTotals)
	router.GET("/api/reports/10", reportHandler.HighestDebt)

	return router, db
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

// seedWorld populates two organizations, three members and enough ledger and
// fee rows to drive every report.
func seedWorld(t *testing.T, db *gorm.DB) {
	t.Helper()

	members := []model.Member{
		{StudentNumber: "2021-00001", Name: "Maria Santos", Gender: "F", DegreeProgram: "BS Computer Science", Age: 21},
		{StudentNumber: "2021-00002", Name: "Juan Dela Cruz", Gender: "M", DegreeProgram: "BS Mathematics", Age: 22},
		{StudentNumber: "2019-00003", Name: "Ana Reyes", Gender: "F", DegreeProgram: "BS Computer Science", Age: 24, DateGraduated: date(t, "2023-06-30")},
	}
	require.NoError(t, db.Create(&members).Error)

	orgs := []model.Organization{
		{OrganizationID: "ORG1", Name: "Computer Science Society", Scope: model.ScopeUniversity, Status: model.OrgStatusActive},
		{OrganizationID: "ORG2", Name: "Math Circle", Scope: model.ScopeCollege, Status: model.OrgStatusActive},
	}
	require.NoError(t, db.Create(&orgs).Error)

	memberships := []model.Membership{
		{StudentNumber: "2021-00001", OrganizationID: "ORG1", Role: "President", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Executive"},
		{StudentNumber: "2021-00002", OrganizationID: "ORG1", Role: "Member", Status: model.MembershipInactive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Membership"},
		{StudentNumber: "2021-00001", OrganizationID: "ORG1", Role: "Member", Status: model.MembershipActive, Semester: "2nd", AcademicYear: "2022-2023", Committee: "Membership"},
		{StudentNumber: "2021-00002", OrganizationID: "ORG1", Role: "President", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2022-2023", Committee: "Executive"},
		{StudentNumber: "2019-00003", OrganizationID: "ORG1", Role: "Member", Status: model.MembershipAlumni, Semester: "1st", AcademicYear: "2022-2023", Committee: "Membership"},
		{StudentNumber: "2021-00001", OrganizationID: "ORG2", Role: "Member", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Membership"},
	}
	require.NoError(t, db.Create(&memberships).Error)

	fees := []model.Fee{
		{TransactionID: "TXN-001", Status: model.FeeUnpaid, Amount: decimal.RequireFromString("150.00"), Type: "Membership Fee", Semester: "1st", AcademicYear: "2023-2024", StudentNumber: "2021-00001", OrganizationID: "ORG1"},
		{TransactionID: "TXN-002", Status: model.FeeUnpaid, Amount: decimal.RequireFromString("75.50"), Type: "Event Fee", Semester: "1st", AcademicYear: "2023-2024", StudentNumber: "2021-00001", OrganizationID: "ORG1"},
		{TransactionID: "TXN-003", Status: model.FeeUnpaid, Amount: decimal.RequireFromString("225.50"), Type: "Membership Fee", Semester: "1st", AcademicYear: "2023-2024", StudentNumber: "2021-00002", OrganizationID: "ORG1"},
		{TransactionID: "TXN-004", Status: model.FeePaid, PaymentDate: date(t, "2023-09-01"), Amount: decimal.RequireFromString("100.00"), Type: "Membership Fee", Semester: "1st", AcademicYear: "2023-2024", StudentNumber: "2021-00002", OrganizationID: "ORG1"},
		{TransactionID: "TXN-005", Status: model.FeePaid, PaymentDate: date(t, "2023-10-01"), Amount: decimal.RequireFromString("50.00"), Type: "Event Fee", Semester: "1st", AcademicYear: "2023-2024", IsLate: true, StudentNumber: "2021-00001", OrganizationID: "ORG1"},
		{TransactionID: "TXN-006", Status: model.FeeUnpaid, Amount: decimal.RequireFromString("60.00"), Type: "Membership Fee", Semester: "1st", AcademicYear: "2023-2024", StudentNumber: "2021-00001", OrganizationID: "ORG2"},
		{TransactionID: "TXN-007", Status: model.FeeUnpaid, Amount: decimal.RequireFromString("40.00"), Type: "Event Fee", Semester: "2nd", AcademicYear: "2022-2023", StudentNumber: "2021-00001", OrganizationID: "ORG1"},
	}
	require.NoError(t, db.Create(&fees).Error)
}

func get(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    url,
	})
}

func TestOrganizationMembers_ListsLedgerRows(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 1 for ORG1 without narrowing filters
	recorder := get(t, router, "/api/reports/1?organization=ORG1")

	// Then: One row per ledger row of the organization
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.MemberRow
	testutil.ParseResponse(t, recorder, &rows)
	assert.Len(t, rows, 5)
}

func TestOrganizationMembers_FiltersByRoleAndStatus(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Narrow to active presidents
	recorder := get(t, router, "/api/reports/1?organization=ORG1&role=President&status=active")

	// Then: Only the matching rows remain
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.MemberRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "President", row.Role)
		assert.Equal(t, model.MembershipActive, row.Status)
	}
}

func TestOrganizationMembers_OrdersByRoleThenGender(t *testing.T) {
	// Given: Ledger rows seeded in scrambled role order
	router, db := setupTestEnvironment(t)

	members := []model.Member{
		{StudentNumber: "2021-00001", Name: "Maria Santos", Gender: "F", DegreeProgram: "BS Computer Science", Age: 21},
		{StudentNumber: "2021-00002", Name: "Juan Dela Cruz", Gender: "M", DegreeProgram: "BS Mathematics", Age: 22},
		{StudentNumber: "2021-00003", Name: "Ana Reyes", Gender: "F", DegreeProgram: "BS Biology", Age: 20},
		{StudentNumber: "2021-00004", Name: "Pedro Ramos", Gender: "M", DegreeProgram: "BS Physics", Age: 23},
	}
	require.NoError(t, db.Create(&members).Error)
	require.NoError(t, db.Create(&model.Organization{
		OrganizationID: "ORG1", Name: "Computer Science Society",
		Scope: model.ScopeUniversity, Status: model.OrgStatusActive,
	}).Error)

	memberships := []model.Membership{
		{StudentNumber: "2021-00001", OrganizationID: "ORG1", Role: "Treasurer", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Executive"},
		{StudentNumber: "2021-00002", OrganizationID: "ORG1", Role: "President", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Executive"},
		{StudentNumber: "2021-00003", OrganizationID: "ORG1", Role: "Secretary", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Executive"},
		{StudentNumber: "2021-00004", OrganizationID: "ORG1", Role: "Secretary", Status: model.MembershipActive, Semester: "1st", AcademicYear: "2023-2024", Committee: "Executive"},
	}
	require.NoError(t, db.Create(&memberships).Error)

	// When: Request report 1 without narrowing filters
	recorder := get(t, router, "/api/reports/1?organization=ORG1")

	// Then: Rows come back role-sorted, gender breaking the secretary tie
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.MemberRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 4)
	assert.Equal(t, "President", rows[0].Role)
	assert.Equal(t, "Secretary", rows[1].Role)
	assert.Equal(t, "F", rows[1].Gender)
	assert.Equal(t, "Secretary", rows[2].Role)
	assert.Equal(t, "M", rows[2].Gender)
	assert.Equal(t, "Treasurer", rows[3].Role)
}

func TestOrganizationMembers_MissingOrganization(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 1 without the required filter
	recorder := get(t, router, "/api/reports/1")

	// Then: Rejected before any query, naming the missing filter
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Contains(t, errorResponse.Message, "organization")
}

func TestUnpaidByStudent_SumsPerStudent(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 2 for ORG1 in 1st/2023-2024
	recorder := get(t, router, "/api/reports/2?organization=ORG1&semester=1st&academicYear=2023-2024")

	// Then: Unpaid amounts are summed per student
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.DebtSummaryRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 2)

	assert.Equal(t, "2021-00001", rows[0].StudentNumber)
	assert.True(t, rows[0].TotalUnpaid.Equal(decimal.RequireFromString("225.50")),
		"expected 225.50, got %s", rows[0].TotalUnpaid)
	assert.Equal(t, "2021-00002", rows[1].StudentNumber)
	assert.True(t, rows[1].TotalUnpaid.Equal(decimal.RequireFromString("225.50")),
		"expected 225.50, got %s", rows[1].TotalUnpaid)
}

func TestUnpaidByStudent_MissingAllFilters(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 2 with no filters at all
	recorder := get(t, router, "/api/reports/2")

	// Then: The error names every missing filter at once
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Contains(t, errorResponse.Message, "academicYear")
	assert.Contains(t, errorResponse.Message, "organization")
	assert.Contains(t, errorResponse.Message, "semester")
}

func TestStudentUnpaidFees_AcrossOrganizations(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 3 for the student owing in both organizations
	recorder := get(t, router, "/api/reports/3?studentNumber=2021-00001")

	// Then: All four unpaid fees appear, oldest academic year first
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.UnpaidFeeRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 4)
	assert.Equal(t, "2022-2023", rows[0].AcademicYear)

	organizations := make(map[string]bool)
	for _, row := range rows {
		organizations[row.OrganizationName] = true
	}
	assert.True(t, organizations["Computer Science Society"])
	assert.True(t, organizations["Math Circle"])
}

func TestExecutiveCommittee_FiltersByYear(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 4 for ORG1 in 2023-2024
	recorder := get(t, router, "/api/reports/4?organization=ORG1&academicYear=2023-2024")

	// Then: Only the current year's executive committee appears
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.CommitteeMemberRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "2021-00001", rows[0].StudentNumber)
	assert.Equal(t, "President", rows[0].Role)
}

func TestExecutiveCommittee_MissingAcademicYear(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 4 without the academic year
	recorder := get(t, router, "/api/reports/4?organization=ORG1")

	// Then: Rejected, naming the missing filter
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Contains(t, errorResponse.Message, "academicYear")
	assert.NotContains(t, errorResponse.Message, "organization,")
}

func TestRoleHistory_DefaultsToPresident(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 5 without naming a role
	recorder := get(t, router, "/api/reports/5?organization=ORG1")

	// Then: Presidents are listed, most recent year first
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.RoleHistoryRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "2023-2024", rows[0].AcademicYear)
	assert.Equal(t, "2021-00001", rows[0].StudentNumber)
	assert.Equal(t, "2022-2023", rows[1].AcademicYear)
	assert.Equal(t, "2021-00002", rows[1].StudentNumber)
}

func TestLatePayments_CarriesRoleAtTheTime(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 6 for ORG1 in 1st/2023-2024
	recorder := get(t, router, "/api/reports/6?organization=ORG1&semester=1st&academicYear=2023-2024")

	// Then: The single late payment appears with the payer's role that term
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.LatePaymentRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "2021-00001", rows[0].StudentNumber)
	assert.Equal(t, "President", rows[0].Role)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("50.00")))
}

func TestStatusShares_PercentagesSumToHundred(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 7 over the last two semesters of ORG1
	recorder := get(t, router, "/api/reports/7?organization=ORG1&n=2")

	// Then: Active and inactive counts cover the window; alumni rows are out
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.StatusShareRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 2)

	assert.Equal(t, model.MembershipActive, rows[0].Status)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, model.MembershipInactive, rows[1].Status)
	assert.Equal(t, int64(1), rows[1].Count)

	assert.InDelta(t, 100.0, rows[0].Percentage+rows[1].Percentage, 0.0001)
	assert.InDelta(t, 66.6667, rows[0].Percentage, 0.001)
}

func TestStatusShares_InvalidWindow(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 7 with a non-numeric window
	recorder := get(t, router, "/api/reports/7?organization=ORG1&n=zero")

	// Then: Rejected before any query
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAlumni_RespectsCutoffDate(t *testing.T) {
	// Given: Seeded world with one graduate (2023-06-30)
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Cutoff after the graduation
	recorder := get(t, router, "/api/reports/8?organization=ORG1&date=2024-01-01")

	// Then: The graduate appears once
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.AlumnusRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "2019-00003", rows[0].StudentNumber)

	// When: Cutoff before the graduation
	recorder = get(t, router, "/api/reports/8?organization=ORG1&date=2023-01-01")

	// Then: Empty array, not null
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())
}

func TestFeeTotals_GroupsByStatus(t *testing.T) {
	// Given: Seeded world
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 9 for ORG1 up to the end of 2023
	recorder := get(t, router, "/api/reports/9?organization=ORG1&date=2023-12-31")

	// Then: Dated payments are totalled per status
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.FeeTotalRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, model.FeePaid, rows[0].Status)
	assert.True(t, rows[0].TotalAmount.Equal(decimal.RequireFromString("150.00")),
		"expected 150.00, got %s", rows[0].TotalAmount)
}

func TestHighestDebt_TieGoesToLowestStudentNumber(t *testing.T) {
	// Given: Seeded world where two students owe 225.50 each
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	// When: Request report 10
	recorder := get(t, router, "/api/reports/10?organization=ORG1&semester=1st&academicYear=2023-2024")

	// Then: Exactly one winner, the lower student number
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.DebtSummaryRow
	testutil.ParseResponse(t, recorder, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "2021-00001", rows[0].StudentNumber)
	assert.True(t, rows[0].TotalUnpaid.Equal(decimal.RequireFromString("225.50")))
}

func TestGraduationShowsUpInAlumniReport(t *testing.T) {
	// Given: Seeded world plus an active member about to graduate
	router, db := setupTestEnvironment(t)
	seedWorld(t, db)

	require.NoError(t, db.Create(&model.Member{
		StudentNumber: "2020-00009",
		Name:          "Carlos Garcia",
		DegreeProgram: "BS Computer Science",
	}).Error)
	require.NoError(t, db.Create(&model.Membership{
		StudentNumber:  "2020-00009",
		OrganizationID: "ORG1",
		Role:           "Member",
		Status:         model.MembershipActive,
		Semester:       "2nd",
		AcademicYear:   "2023-2024",
		Committee:      "Membership",
	}).Error)

	memberRepo := member.NewMemberRepository()
	memberService := member.NewMemberService(db, memberRepo)
	memberHandler := member.NewMemberHandler(memberService)
	router.PUT("/api/members/:studentNumber", memberHandler.Update)

	// When: The member's graduation date is recorded
	updateRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/members/2020-00009",
		Body:   map[string]any{"dateGraduated": "2024-06-15"},
	})
	require.Equal(t, http.StatusOK, updateRecorder.Code)

	// Then: The cascade makes the member visible to the alumni report
	recorder := get(t, router, "/api/reports/8?organization=ORG1&date=2024-12-31")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var rows []report.AlumnusRow
	testutil.ParseResponse(t, recorder, &rows)

	var found bool
	for _, row := range rows {
		if row.StudentNumber == "2020-00009" {
			found = true
		}
	}
	assert.True(t, found, "graduated member should appear in the alumni report")
}
