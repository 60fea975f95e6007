package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mechbook/internal/database"
	"mechbook/internal/domain"
	"mechbook/internal/middleware"
	"mechbook/internal/modules/admin"
	"mechbook/internal/modules/auth"
	"mechbook/internal/modules/booking"
	"mechbook/internal/modules/directory"
	"mechbook/internal/modules/mechanic"
	jwtsvc "mechbook/internal/pkg/jwt"
	"mechbook/internal/repository"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
	adminToken string
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	// each new connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db), "Failed to migrate")

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, shopRepo, jwtService))
	directoryHandler := directory.NewHandler(directory.NewService(shopRepo, serviceRepo, categoryRepo, false), db)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, serviceRepo, shopRepo))
	mechanicHandler := mechanic.NewHandler(mechanic.NewService(shopRepo, serviceRepo))
	adminHandler := admin.NewHandler(admin.NewService(shopRepo, categoryRepo, userRepo, bookingRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	directoryHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterRoutes(protected)

		mechanicGroup := protected.Group("/mechanic")
		mechanicGroup.Use(middleware.MechanicOnly())
		{
			mechanicHandler.RegisterRoutes(mechanicGroup)
			bookingHandler.RegisterMechanicRoutes(mechanicGroup)
		}

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	// Admin account for approval flows
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	adminUser := &domain.User{
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, userRepo.Create(context.Background(), adminUser))

	adminToken, err := jwtService.GenerateToken(adminUser.ID, adminUser.Email, string(adminUser.Role))
	require.NoError(t, err)

	return &E2ETestSuite{
		router:     r,
		db:         db,
		jwtService: jwtService,
		adminToken: adminToken,
	}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, *TestResponse) {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "invalid response body: %s", w.Body.String())
	return w, &resp
}

func (s *E2ETestSuite) registerUser(t *testing.T, email, name string) string {
	w, resp := s.makeRequest(t, "POST", "/api/v1/auth/register", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp.Data["token"].(string)
}

func (s *E2ETestSuite) registerMechanic(t *testing.T, email, shopName, city string, vehicleTypes []string) string {
	w, resp := s.makeRequest(t, "POST", "/api/v1/auth/register", gin.H{
		"email":         email,
		"password":      "secret123",
		"name":          "Mechanic " + shopName,
		"role":          "MECHANIC",
		"shop_name":     shopName,
		"shop_address":  "123 Main Street",
		"shop_city":     city,
		"shop_state":    "Maharashtra",
		"shop_pincode":  "400001",
		"shop_phone":    "+91 9876543210",
		"vehicle_types": vehicleTypes,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp.Data["token"].(string)
}

// approveShopOf approves the (single) pending shop owned by the mechanic
// with the given email and returns the shop id.
func (s *E2ETestSuite) approveShopOf(t *testing.T, email string) int64 {
	_, resp := s.makeRequest(t, "GET", "/api/v1/admin/mechanics?status=PENDING", nil, s.adminToken)
	shops := resp.Data["shops"].([]interface{})

	for _, raw := range shops {
		shop := raw.(map[string]interface{})
		owner, ok := shop["owner"].(map[string]interface{})
		if !ok || owner["email"].(string) != email {
			continue
		}
		id := int64(shop["id"].(float64))
		w, _ := s.makeRequest(t, "POST", fmt.Sprintf("/api/v1/admin/mechanics/%d/approve", id), nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return id
	}

	t.Fatalf("no pending shop found for %s", email)
	return 0
}

func (s *E2ETestSuite) createService(t *testing.T, mechToken, name string, price float64) int64 {
	w, resp := s.makeRequest(t, "POST", "/api/v1/mechanic/services", gin.H{
		"name":     name,
		"price":    price,
		"duration": 45,
	}, mechToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc := resp.Data["service"].(map[string]interface{})
	return int64(svc["id"].(float64))
}

func TestRegistration_DuplicateEmail(t *testing.T) {
	s := setupTestSuite(t)

	s.registerUser(t, "alice@example.com", "Alice")

	w, resp := s.makeRequest(t, "POST", "/api/v1/auth/register", gin.H{
		"email":    "alice@example.com",
		"password": "different123",
		"name":     "Imposter",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)

	var count int64
	s.db.Table("users").Where("email = ?", "alice@example.com").Count(&count)
	assert.Equal(t, int64(1), count, "duplicate registration must not create a row")
}

func TestRegistration_MechanicWithoutShopFieldsIsAtomic(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, "POST", "/api/v1/auth/register", gin.H{
		"email":    "bob@example.com",
		"password": "secret123",
		"name":     "Bob",
		"role":     "MECHANIC",
		// shop fields missing entirely
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	var users, shops int64
	s.db.Table("users").Where("email = ?", "bob@example.com").Count(&users)
	s.db.Table("shops").Count(&shops)
	assert.Zero(t, users)
	assert.Zero(t, shops)
}

func TestShopLifecycle_PendingUntilApproved(t *testing.T) {
	s := setupTestSuite(t)

	s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"TWO_WHEELER", "FOUR_WHEELER"})

	// hidden while pending
	_, resp := s.makeRequest(t, "GET", "/api/v1/shops?city=Mumbai", nil, "")
	assert.Empty(t, resp.Data["shops"])

	shopID := s.approveShopOf(t, "bob@example.com")

	_, resp = s.makeRequest(t, "GET", "/api/v1/shops?city=Mumbai", nil, "")
	shops := resp.Data["shops"].([]interface{})
	require.Len(t, shops, 1)
	assert.Equal(t, "Quick Fix Auto Service", shops[0].(map[string]interface{})["name"])

	// detail endpoint serves the approved shop
	w, resp := s.makeRequest(t, "GET", fmt.Sprintf("/api/v1/shops/%d", shopID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	shop := resp.Data["shop"].(map[string]interface{})
	assert.Equal(t, "Quick Fix Auto Service", shop["name"])
}

func TestShopSearch_VehicleTypeFilter(t *testing.T) {
	s := setupTestSuite(t)

	s.registerMechanic(t, "bikes@example.com", "Two Wheeler Hub", "Mumbai", []string{"TWO_WHEELER"})
	s.registerMechanic(t, "cars@example.com", "SpeedMech Garage", "Mumbai", []string{"FOUR_WHEELER"})
	s.approveShopOf(t, "bikes@example.com")
	s.approveShopOf(t, "cars@example.com")

	_, resp := s.makeRequest(t, "GET", "/api/v1/shops?vehicleType=TWO_WHEELER", nil, "")
	shops := resp.Data["shops"].([]interface{})
	require.Len(t, shops, 1)
	assert.Equal(t, "Two Wheeler Hub", shops[0].(map[string]interface{})["name"])
}

func TestShopSearch_MatchesServiceName(t *testing.T) {
	s := setupTestSuite(t)

	mechToken := s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})
	s.approveShopOf(t, "bob@example.com")
	s.createService(t, mechToken, "Ceramic Coating", 15000)

	_, resp := s.makeRequest(t, "GET", "/api/v1/shops?q=ceramic", nil, "")
	shops := resp.Data["shops"].([]interface{})
	require.Len(t, shops, 1)

	_, resp = s.makeRequest(t, "GET", "/api/v1/shops?q=nonexistent", nil, "")
	assert.Empty(t, resp.Data["shops"])
}

func TestBooking_SlotConflictAndRebookAfterCancel(t *testing.T) {
	s := setupTestSuite(t)

	mechToken := s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})
	shopID := s.approveShopOf(t, "bob@example.com")
	svcID := s.createService(t, mechToken, "Oil Change", 999)

	aliceToken := s.registerUser(t, "alice@example.com", "Alice")
	carolToken := s.registerUser(t, "carol@example.com", "Carol")

	createReq := gin.H{
		"shop_id":    shopID,
		"service_id": svcID,
		"date":       "2027-03-10",
		"time_slot":  "10:00",
	}

	w, resp := s.makeRequest(t, "POST", "/api/v1/bookings", createReq, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := int64(resp.Data["booking"].(map[string]interface{})["id"].(float64))

	// same slot, different user
	w, resp = s.makeRequest(t, "POST", "/api/v1/bookings", createReq, carolToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLOT_TAKEN", resp.Error.Code)

	// a different slot is fine
	w, _ = s.makeRequest(t, "POST", "/api/v1/bookings", gin.H{
		"shop_id":    shopID,
		"service_id": svcID,
		"date":       "2027-03-10",
		"time_slot":  "11:00",
	}, carolToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	// cancelling frees the slot for re-booking
	w, _ = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/bookings/%d", bookingID), gin.H{"status": "CANCELLED"}, aliceToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.makeRequest(t, "POST", "/api/v1/bookings", createReq, carolToken)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestBooking_PriceSnapshotSurvivesPriceChange(t *testing.T) {
	s := setupTestSuite(t)

	mechToken := s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})
	shopID := s.approveShopOf(t, "bob@example.com")
	svcID := s.createService(t, mechToken, "Oil Change", 999)

	aliceToken := s.registerUser(t, "alice@example.com", "Alice")

	w, resp := s.makeRequest(t, "POST", "/api/v1/bookings", gin.H{
		"shop_id":    shopID,
		"service_id": svcID,
		"date":       "2027-03-10",
		"time_slot":  "10:00",
	}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := int64(resp.Data["booking"].(map[string]interface{})["id"].(float64))

	// mechanic raises the price afterwards
	w, _ = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/services/%d", svcID), gin.H{"price": 1499}, mechToken)
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = s.makeRequest(t, "GET", fmt.Sprintf("/api/v1/bookings/%d", bookingID), nil, aliceToken)
	b := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, 999.0, b["total_price"], "booked price must not follow later price changes")
}

func TestBooking_RoleRulesOnStatus(t *testing.T) {
	s := setupTestSuite(t)

	mechToken := s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})
	shopID := s.approveShopOf(t, "bob@example.com")
	svcID := s.createService(t, mechToken, "Oil Change", 999)

	aliceToken := s.registerUser(t, "alice@example.com", "Alice")
	carolToken := s.registerUser(t, "carol@example.com", "Carol")

	_, resp := s.makeRequest(t, "POST", "/api/v1/bookings", gin.H{
		"shop_id":    shopID,
		"service_id": svcID,
		"date":       "2027-03-10",
		"time_slot":  "10:00",
	}, aliceToken)
	bookingID := int64(resp.Data["booking"].(map[string]interface{})["id"].(float64))
	path := fmt.Sprintf("/api/v1/bookings/%d", bookingID)

	// customers cannot confirm, even their own booking
	w, resp := s.makeRequest(t, "PATCH", path, gin.H{"status": "CONFIRMED"}, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	// strangers cannot even read it
	w, _ = s.makeRequest(t, "GET", path, nil, carolToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// the shop's mechanic confirms through the mechanic endpoint
	w, _ = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/bookings/%d", bookingID), gin.H{"status": "CONFIRMED"}, mechToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// CONFIRMED cannot jump straight to COMPLETED
	w, resp = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/bookings/%d", bookingID), gin.H{"status": "COMPLETED"}, mechToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)

	// IN_PROGRESS → COMPLETED is the valid path
	w, _ = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/bookings/%d", bookingID), gin.H{"status": "IN_PROGRESS"}, mechToken)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/bookings/%d", bookingID), gin.H{"status": "COMPLETED"}, mechToken)
	require.Equal(t, http.StatusOK, w.Code)

	// terminal states stay terminal, even for the admin
	w, _ = s.makeRequest(t, "PATCH", path, gin.H{"status": "CANCELLED"}, s.adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMechanic_CannotTouchForeignService(t *testing.T) {
	s := setupTestSuite(t)

	bobToken := s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})
	eveToken := s.registerMechanic(t, "eve@example.com", "SpeedMech Garage", "Mumbai", []string{"FOUR_WHEELER"})

	svcID := s.createService(t, bobToken, "Oil Change", 999)

	w, resp := s.makeRequest(t, "PATCH", fmt.Sprintf("/api/v1/mechanic/services/%d", svcID), gin.H{"price": 1}, eveToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SERVICE_NOT_FOUND", resp.Error.Code)

	w, _ = s.makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/mechanic/services/%d", svcID), nil, eveToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_RejectThenApproveClearsReason(t *testing.T) {
	s := setupTestSuite(t)

	s.registerMechanic(t, "bob@example.com", "Quick Fix Auto Service", "Mumbai", []string{"FOUR_WHEELER"})

	_, resp := s.makeRequest(t, "GET", "/api/v1/admin/mechanics?status=PENDING", nil, s.adminToken)
	shops := resp.Data["shops"].([]interface{})
	require.Len(t, shops, 1)
	shopID := int64(shops[0].(map[string]interface{})["id"].(float64))

	// reject without a reason falls back to the default
	w, resp := s.makeRequest(t, "POST", fmt.Sprintf("/api/v1/admin/mechanics/%d/reject", shopID), nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	shop := resp.Data["shop"].(map[string]interface{})
	assert.Equal(t, "REJECTED", shop["status"])
	assert.Equal(t, "Not specified", shop["rejection_reason"])

	w, resp = s.makeRequest(t, "POST", fmt.Sprintf("/api/v1/admin/mechanics/%d/approve", shopID), nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	shop = resp.Data["shop"].(map[string]interface{})
	assert.Equal(t, "APPROVED", shop["status"])
	_, hasReason := shop["rejection_reason"]
	assert.False(t, hasReason, "approval must clear the rejection reason")
}

func TestAdmin_CategoriesAndStats(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, "POST", "/api/v1/admin/categories", gin.H{
		"name":         "Engine Repair",
		"vehicle_type": "FOUR_WHEELER",
	}, s.adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = s.makeRequest(t, "POST", "/api/v1/admin/categories", gin.H{
		"name":         "Engine Repair",
		"vehicle_type": "TWO_WHEELER",
	}, s.adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CATEGORY_EXISTS", resp.Error.Code)

	// public listing shows the active category without auth
	_, resp = s.makeRequest(t, "GET", "/api/v1/categories", nil, "")
	cats := resp.Data["categories"].([]interface{})
	require.Len(t, cats, 1)

	// regular users cannot reach admin endpoints
	aliceToken := s.registerUser(t, "alice@example.com", "Alice")
	w, _ = s.makeRequest(t, "GET", "/api/v1/admin/stats", nil, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, resp = s.makeRequest(t, "GET", "/api/v1/admin/stats", nil, s.adminToken)
	stats := resp.Data["stats"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["users"]) // admin + alice
}

func TestHealth(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, "GET", "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp.Data["status"])
	assert.Equal(t, "ok", resp.Data["database"])
}
