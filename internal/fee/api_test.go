package fee_test

import (
	"net/http"
	"testing"

	"github.com/pmadriaga/studorg/go-api-server/internal/fee"
	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for fee handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	feeRepo := fee.NewFeeRepository()
	feeService := fee.NewFeeService(db, feeRepo)
	feeHandler := fee.NewFeeHandler(feeService)

	router := testutil.SetupTestRouter()
	router.GET("/api/fees", feeHandler.List)
	router.GET("/api/fees/:transactionId", feeHandler.Get)
	router.POST("/api/fees", feeHandler.Create)
	router.PUT("/api/fees/:transactionId", feeHandler.Update)
	router.DELETE("/api/fees/:transactionId", feeHandler.Delete)

	return router, db
}

func seedReferences(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Member{
		StudentNumber: "2021-00001",
		Name:          "Maria Santos",
	}).Error)
	require.NoError(t, db.Create(&model.Organization{
		OrganizationID: "ORG1",
		Name:           "Computer Science Society",
		Status:         model.OrgStatusActive,
	}).Error)
}

func validCreateRequest() fee.CreateFeeRequest {
	return fee.CreateFeeRequest{
		TransactionID:  "TXN-001",
		Status:         model.FeeUnpaid,
		Amount:         decimal.RequireFromString("150.00"),
		Type:           "Membership Fee",
		Semester:       "1st",
		AcademicYear:   "2023-2024",
		StudentNumber:  "2021-00001",
		OrganizationID: "ORG1",
	}
}

func TestCreateFee_Success(t *testing.T) {
	// Given: Setup test environment with valid references
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	// When: Create an unpaid fee
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})

	// Then: Verify response
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created model.Fee
	testutil.ParseResponse(t, recorder, &created)
	assert.Equal(t, "TXN-001", created.TransactionID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("150.00")))
	assert.Nil(t, created.PaymentDate)
}

func TestCreateFee_DuplicateTransactionID(t *testing.T) {
	// Given: An existing fee
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// When: Create another fee reusing the transaction id
	duplicate := validCreateRequest()
	duplicate.Amount = decimal.RequireFromString("999.99")
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   duplicate,
	})

	// Then: Conflict, and the original row is unmodified
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-002", errorResponse.Code)

	var stored model.Fee
	require.NoError(t, db.First(&stored, "transaction_id = ?", "TXN-001").Error)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("150.00")),
		"original amount must survive the rejected duplicate")
}

func TestCreateFee_PaidWithoutPaymentDate(t *testing.T) {
	// Given: Setup test environment
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	// When: Create a paid fee with no payment date
	request := validCreateRequest()
	request.Status = model.FeePaid
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   request,
	})

	// Then: Rejected
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-004", errorResponse.Code)
}

func TestCreateFee_UnknownSemesterLabel(t *testing.T) {
	// Given: Setup test environment
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	// When: Create a fee with a semester label outside 1st/2nd/Summer
	request := validCreateRequest()
	request.Semester = "3rd"
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   request,
	})

	// Then: Rejected at binding
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ERROR-001", errorResponse.Code)
}

func TestCreateFee_NegativeAmount(t *testing.T) {
	// Given: Setup test environment
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	// When: Create a fee with a negative amount
	request := validCreateRequest()
	request.Amount = decimal.RequireFromString("-5.00")
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   request,
	})

	// Then: Rejected
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-005", errorResponse.Code)
}

func TestCreateFee_UnknownMember(t *testing.T) {
	// Given: Setup test environment where only the organization exists
	router, db := setupTestEnvironment(t)
	require.NoError(t, db.Create(&model.Organization{
		OrganizationID: "ORG1",
		Name:           "Computer Science Society",
	}).Error)

	// When: Create a fee referencing a missing member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})

	// Then: Rejected as a bad reference, not a server error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-003", errorResponse.Code)
}

func TestUpdateFee_MarkPaid(t *testing.T) {
	// Given: An unpaid fee
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// When: Mark it paid with a payment date
	paid := model.FeePaid
	paymentDate := "2024-01-15"
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/fees/TXN-001",
		Body: fee.UpdateFeeRequest{
			Status:      &paid,
			PaymentDate: &paymentDate,
		},
	})

	// Then: The fee is paid and dated
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Fee
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, model.FeePaid, updated.Status)
	require.NotNil(t, updated.PaymentDate)
}

func TestUpdateFee_MarkPaidWithoutPaymentDate(t *testing.T) {
	// Given: An unpaid fee
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// When: Mark it paid without supplying a payment date
	paid := model.FeePaid
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/fees/TXN-001",
		Body:   fee.UpdateFeeRequest{Status: &paid},
	})

	// Then: Rejected the same way the create path rejects it
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-004", errorResponse.Code)

	var stored model.Fee
	require.NoError(t, db.Where("transaction_id = ?", "TXN-001").First(&stored).Error)
	assert.Equal(t, model.FeeUnpaid, stored.Status)
}

func TestGetFee_NotFound(t *testing.T) {
	// Given: Setup test environment
	router, _ := setupTestEnvironment(t)

	// When: Fetch a fee that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/fees/TXN-MISSING",
	})

	// Then: Verify not found response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "FEE-001", errorResponse.Code)
}

func TestDeleteFee_Success(t *testing.T) {
	// Given: An existing fee
	router, db := setupTestEnvironment(t)
	seedReferences(t, db)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/fees",
		Body:   validCreateRequest(),
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// When: Delete it
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/fees/TXN-001",
	})

	// Then: Gone from the store
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, db.Model(&model.Fee{}).Count(&count).Error)
	assert.Zero(t, count)
}
