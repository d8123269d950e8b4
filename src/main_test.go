package main

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/middlewares"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	gatewaySecret = "sk_test_secret"
	origin        = "http://localhost:3000"
)

type TestSuite struct {
	suite.Suite
	DB      *gorm.DB
	Gateway *httptest.Server

	Organizer  models.User
	Organizer2 models.User
	Player     models.User
	Player2    models.User

	OrganizerToken  string
	Organizer2Token string
	PlayerToken     string
	Player2Token    string
}

func newTestDB() *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open("file:testdb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB
}

func newGatewayServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/initialize", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.example.com/abc123"}}`))
	})
	mux.HandleFunc("/subaccount", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"data":{"subaccount_code":"ACCT_new","account_name":"Test Organizer Two"}}`))
	})
	return httptest.NewServer(mux)
}

func signWebhook(payload []byte) string {
	mac := hmac.New(sha512.New, []byte(gatewaySecret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *TestSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	os.Setenv("MAINTENANCE_MODE", "false")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", eventDateValidatorFunc)
	}

	d := newTestDB()
	db.NewDB(d)
	s.DB = d

	err := d.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Team{},
		&models.Transaction{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	s.Gateway = newGatewayServer()
	lib.UsePaystackClient(lib.NewPaystackClient(lib.PaystackConfig{
		SecretKey:          gatewaySecret,
		BaseURL:            s.Gateway.URL,
		PlatformSubaccount: "ACCT_platform",
	}))

	subaccount := "ACCT_org"
	s.Organizer = models.User{Name: "Test Organizer", Email: "organizer@example.com", Role: types.ROLE_ORGANIZER, SubaccountCode: &subaccount}
	s.Organizer2 = models.User{Name: "Test Organizer Two", Email: "organizer2@example.com", Role: types.ROLE_ORGANIZER}
	s.Player = models.User{Name: "Test Player", Email: "player@example.com", Role: types.ROLE_PLAYER}
	s.Player2 = models.User{Name: "Test Player Two", Email: "player2@example.com", Role: types.ROLE_PLAYER}
	for _, u := range []*models.User{&s.Organizer, &s.Organizer2, &s.Player, &s.Player2} {
		if err := d.Create(u).Error; err != nil {
			log.Fatalf("Could not create user due to error: %s\n", err.Error())
		}
	}

	s.OrganizerToken, _ = utils.GenerateJWT(s.Organizer.Email, s.Organizer.ID, s.Organizer.Role)
	s.Organizer2Token, _ = utils.GenerateJWT(s.Organizer2.Email, s.Organizer2.ID, s.Organizer2.Role)
	s.PlayerToken, _ = utils.GenerateJWT(s.Player.Email, s.Player.ID, s.Player.Role)
	s.Player2Token, _ = utils.GenerateJWT(s.Player2.Email, s.Player2.ID, s.Player2.Role)
}

func (s *TestSuite) TearDownSuite() {
	s.Gateway.Close()
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Close()
}

func (s *TestSuite) newRouter() *gin.Engine {
	router := setupRouter()
	guestAuthRoutes(router)
	paystackWebhookRoute(router)
	payoutHandlers(router)
	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	eventHandlers(authorized)
	teamHandlers(authorized)
	transactionHandlers(authorized)
	verificationHandlers(authorized)
	return router
}

func (s *TestSuite) request(router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("origin", origin)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) createEvent(router *gin.Engine, token string, price float64, slots uint) uint {
	w := s.request(router, "POST", "/api/v1/events", token, map[string]any{
		"title":            "5-a-side friendly",
		"location":         "Lekki Astroturf",
		"date":             "2027-05-10",
		"start_time":       "18:00",
		"end_time":         "19:00",
		"price_per_player": price,
		"slots":            slots,
	})
	assert.Equal(s.T(), 201, w.Code)
	return uint(gjson.Get(w.Body.String(), "id").Uint())
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Setenv("MAINTENANCE_MODE", "false")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestAuthRegister() {
	router := s.newRouter()

	w := s.request(router, "POST", "/api/v1/auth/register", "", map[string]any{
		"name":  "New Player",
		"email": "newplayer@example.com",
	})
	assert.Equal(s.T(), 201, w.Code)
	assert.Greater(s.T(), gjson.Get(w.Body.String(), "id").Uint(), uint64(0))

	w = s.request(router, "POST", "/api/v1/auth/register", "", map[string]any{
		"name":  "New Player",
		"email": "newplayer@example.com",
	})
	assert.Equal(s.T(), 400, w.Code)
	assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestEventRoutes() {
	router := s.newRouter()

	s.Run("Should reject event creation by a player", func() {
		w := s.request(router, "POST", "/api/v1/events", s.PlayerToken, map[string]any{
			"title":      "not allowed",
			"location":   "anywhere",
			"date":       "2027-05-10",
			"start_time": "18:00",
			"end_time":   "19:00",
			"slots":      10,
		})
		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Should reject an event in the past", func() {
		w := s.request(router, "POST", "/api/v1/events", s.OrganizerToken, map[string]any{
			"title":      "too late",
			"location":   "anywhere",
			"date":       "2020-01-01",
			"start_time": "18:00",
			"end_time":   "19:00",
			"slots":      10,
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should create and fetch an event", func() {
		id := s.createEvent(router, s.OrganizerToken, 1500, 10)

		w := s.request(router, "GET", fmt.Sprintf("/api/v1/events/%d", id), s.PlayerToken, nil)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "5-a-side friendly", gjson.Get(body, "data.title").String())
		assert.Equal(s.T(), "open", gjson.Get(body, "data.status").String())
		slug := gjson.Get(body, "data.slug").String()
		assert.True(s.T(), strings.HasPrefix(slug, "5-a-side-friendly"))

		w = s.request(router, "GET", "/api/v1/events/slug/"+slug, s.PlayerToken, nil)
		assert.Equal(s.T(), 200, w.Code)
	})

	s.Run("Should require auth for event listing", func() {
		w := s.request(router, "GET", "/api/v1/events", "", nil)
		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject a bare bearer header", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/events", nil)
		req.Header.Set("Authorization", "Bearer")
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestPaymentLifecycle() {
	router := s.newRouter()
	eventId := s.createEvent(router, s.OrganizerToken, 1000, 10)

	var reference string
	var teamId uint

	s.Run("Checkout should create a pending split transaction", func() {
		w := s.request(router, "POST", "/api/v1/checkout", s.PlayerToken, map[string]any{
			"event_id": eventId,
		})
		assert.Equal(s.T(), 201, w.Code)
		body := w.Body.String()
		reference = gjson.Get(body, "reference").String()
		assert.NotEmpty(s.T(), reference)
		assert.Equal(s.T(), "https://checkout.example.com/abc123", gjson.Get(body, "authorization_url").String())

		var txn models.Transaction
		err := s.DB.Where(&models.Transaction{Reference: reference}).First(&txn).Error
		assert.Nil(s.T(), err)
		assert.Equal(s.T(), types.TRANSACTION_PENDING, txn.Status)
		assert.Equal(s.T(), float64(1000), txn.Amount)
		assert.Equal(s.T(), float64(800), txn.OrganizerShare)
		assert.Equal(s.T(), float64(200), txn.PlatformShare)
	})

	s.Run("Player joins a team before paying", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/events/%d/teams", eventId), s.PlayerToken, map[string]any{
			"name": "Red Sharks",
			"side": "A",
		})
		assert.Equal(s.T(), 201, w.Code)
		teamId = uint(gjson.Get(w.Body.String(), "id").Uint())
	})

	s.Run("Webhook with a bad signature should be rejected before parsing", func() {
		payload := []byte(fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s"}}`, reference))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", "deadbeef")
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 401, w.Code)

		var txn models.Transaction
		s.DB.Where(&models.Transaction{Reference: reference}).First(&txn)
		assert.Equal(s.T(), types.TRANSACTION_PENDING, txn.Status)
	})

	s.Run("Valid confirmation should settle the transaction and propagate", func() {
		payload := []byte(fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s","amount":100000,"currency":"NGN"}}`, reference))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", signWebhook(payload))
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 200, w.Code)

		var txn models.Transaction
		err := s.DB.Where(&models.Transaction{Reference: reference}).First(&txn).Error
		assert.Nil(s.T(), err)
		assert.Equal(s.T(), types.TRANSACTION_SUCCESS, txn.Status)
		assert.NotNil(s.T(), txn.QRCodeData)
		expected := fmt.Sprintf(`{"userId":"%d","eventId":"%d","reference":"%s","type":"event_pass"}`, s.Player.ID, eventId, reference)
		assert.Equal(s.T(), expected, *txn.QRCodeData)

		var event models.Event
		s.DB.Where(&models.Event{ID: eventId}).First(&event)
		assert.Len(s.T(), event.Participants, 1)
		assert.Equal(s.T(), s.Player.ID, event.Participants[0].UserID)
		assert.True(s.T(), event.Participants[0].Paid)
		assert.Equal(s.T(), reference, event.Participants[0].Reference)

		var team models.Team
		s.DB.Where(&models.Team{EventID: eventId}).First(&team)
		assert.Len(s.T(), team.Members, 1)
		assert.True(s.T(), team.Members[0].Paid)
	})

	s.Run("Replayed confirmation should be a no-op", func() {
		payload := []byte(fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s","amount":100000,"currency":"NGN"}}`, reference))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", signWebhook(payload))
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 200, w.Code)

		var event models.Event
		s.DB.Where(&models.Event{ID: eventId}).First(&event)
		assert.Len(s.T(), event.Participants, 1)
	})

	s.Run("A second confirmed charge for the same pair is parked as failed", func() {
		dup := models.Transaction{
			EventID:        eventId,
			UserID:         s.Player.ID,
			Amount:         1000,
			OrganizerShare: 800,
			PlatformShare:  200,
			Reference:      "MD-2-dupcharge",
			Status:         types.TRANSACTION_PENDING,
		}
		assert.Nil(s.T(), s.DB.Create(&dup).Error)

		payload := []byte(`{"event":"charge.success","data":{"reference":"MD-2-dupcharge","amount":100000,"currency":"NGN"}}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", signWebhook(payload))
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 200, w.Code)

		var again models.Transaction
		s.DB.Where(&models.Transaction{Reference: "MD-2-dupcharge"}).First(&again)
		assert.Equal(s.T(), types.TRANSACTION_FAILED, again.Status)

		var successes int64
		s.DB.
			Model(&models.Transaction{}).
			Where("event_id = ? AND user_id = ? AND status = ?", eventId, s.Player.ID, types.TRANSACTION_SUCCESS).
			Count(&successes)
		assert.Equal(s.T(), int64(1), successes)
	})

	s.Run("Paid member cannot leave the roster", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/teams/%d/decline", teamId), s.PlayerToken, nil)
		assert.Equal(s.T(), 409, w.Code)

		var team models.Team
		s.DB.Where(&models.Team{ID: teamId}).First(&team)
		assert.Len(s.T(), team.Members, 1)
		assert.True(s.T(), team.Members[0].Paid)
	})

	s.Run("Second checkout for a paid event should conflict", func() {
		var before int64
		s.DB.Model(&models.Transaction{}).Where(&models.Transaction{EventID: eventId, UserID: s.Player.ID}).Count(&before)

		w := s.request(router, "POST", "/api/v1/checkout", s.PlayerToken, map[string]any{
			"event_id": eventId,
		})
		assert.Equal(s.T(), 409, w.Code)

		var after int64
		s.DB.Model(&models.Transaction{}).Where(&models.Transaction{EventID: eventId, UserID: s.Player.ID}).Count(&after)
		assert.Equal(s.T(), before, after)
	})

	s.Run("Webhook for an unknown reference should 404", func() {
		payload := []byte(`{"event":"charge.success","data":{"reference":"MD-0-none"}}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", signWebhook(payload))
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Organizer verifies the ticket once", func() {
		w := s.request(router, "POST", "/api/v1/admissions/verify", s.OrganizerToken, map[string]any{
			"eventId":   eventId,
			"reference": reference,
			"type":      "event_pass",
		})
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.True(s.T(), gjson.Get(body, "valid").Bool())
		assert.False(s.T(), gjson.Get(body, "data.used").Bool())
		assert.Equal(s.T(), fmt.Sprintf("%d", s.Player.ID), gjson.Get(body, "data.userId").String())
		assert.Equal(s.T(), "Test Player", gjson.Get(body, "data.user.name").String())
		assert.Equal(s.T(), "5-a-side friendly", gjson.Get(body, "data.event.title").String())
	})

	s.Run("Second scan reports the ticket as used", func() {
		w := s.request(router, "POST", "/api/v1/admissions/verify", s.OrganizerToken, map[string]any{
			"eventId":   eventId,
			"reference": reference,
			"type":      "event_pass",
		})
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.True(s.T(), gjson.Get(body, "valid").Bool())
		assert.True(s.T(), gjson.Get(body, "data.used").Bool())
	})

	s.Run("Only the event's creator may verify", func() {
		w := s.request(router, "POST", "/api/v1/admissions/verify", s.PlayerToken, map[string]any{
			"eventId":   eventId,
			"reference": reference,
			"type":      "event_pass",
		})
		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Verify with a forged reference reports not found", func() {
		w := s.request(router, "POST", "/api/v1/admissions/verify", s.OrganizerToken, map[string]any{
			"eventId":   eventId,
			"reference": "MD-0-forged",
			"type":      "event_pass",
		})
		assert.Equal(s.T(), 404, w.Code)
		body := w.Body.String()
		assert.False(s.T(), gjson.Get(body, "valid").Bool())
		assert.Equal(s.T(), "No confirmed payment found for this ticket", gjson.Get(body, "message").String())
	})

	s.Run("Unknown pass types are rejected", func() {
		w := s.request(router, "POST", "/api/v1/admissions/verify", s.OrganizerToken, map[string]any{
			"eventId":   eventId,
			"reference": reference,
			"type":      "season_pass",
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Failed charge should mark the transaction failed", func() {
		w := s.request(router, "POST", "/api/v1/checkout", s.Player2Token, map[string]any{
			"event_id": eventId,
		})
		assert.Equal(s.T(), 201, w.Code)
		ref2 := gjson.Get(w.Body.String(), "reference").String()

		payload := []byte(fmt.Sprintf(`{"event":"charge.failed","data":{"reference":"%s"}}`, ref2))
		wh := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/webhook/paystack", strings.NewReader(string(payload)))
		req.Header.Set("x-paystack-signature", signWebhook(payload))
		router.ServeHTTP(wh, req)
		assert.Equal(s.T(), 200, wh.Code)

		var txn models.Transaction
		s.DB.Where(&models.Transaction{Reference: ref2}).First(&txn)
		assert.Equal(s.T(), types.TRANSACTION_FAILED, txn.Status)

		var event models.Event
		s.DB.Where(&models.Event{ID: eventId}).First(&event)
		assert.Len(s.T(), event.Participants, 1)
	})

	s.Run("Checkout should fail when the organizer has no payout account", func() {
		orphanId := s.createEvent(router, s.Organizer2Token, 500, 10)
		w := s.request(router, "POST", "/api/v1/checkout", s.PlayerToken, map[string]any{
			"event_id": orphanId,
		})
		assert.Equal(s.T(), 422, w.Code)
	})
}

func (s *TestSuite) TestTeamRoutes() {
	router := s.newRouter()
	eventId := s.createEvent(router, s.OrganizerToken, 800, 4)

	var teamId uint
	s.Run("Create a team", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/events/%d/teams", eventId), s.PlayerToken, map[string]any{
			"name": "Blue Lions",
			"side": "B",
		})
		assert.Equal(s.T(), 201, w.Code)
		teamId = uint(gjson.Get(w.Body.String(), "id").Uint())
	})

	s.Run("Side cannot be claimed twice", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/events/%d/teams", eventId), s.Player2Token, map[string]any{
			"name": "Blue Copies",
			"side": "B",
		})
		assert.Equal(s.T(), 409, w.Code)
	})

	s.Run("Captain invites a player who accepts", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/teams/%d/invites", teamId), s.PlayerToken, map[string]any{
			"user_id": s.Player2.ID,
		})
		assert.Equal(s.T(), 201, w.Code)

		w = s.request(router, "POST", fmt.Sprintf("/api/v1/teams/%d/accept", teamId), s.Player2Token, nil)
		assert.Equal(s.T(), 200, w.Code)

		var team models.Team
		s.DB.Where(&models.Team{ID: teamId}).First(&team)
		assert.Len(s.T(), team.Members, 2)
		assert.True(s.T(), team.Members[1].Accepted)
	})

	s.Run("Roster is capped at half the slots", func() {
		// Capacity for 4 slots is 2 and the roster is full now.
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/teams/%d/invites", teamId), s.PlayerToken, map[string]any{
			"user_id": s.Organizer2.ID,
		})
		assert.Equal(s.T(), 409, w.Code)
	})

	s.Run("Only the captain can invite", func() {
		w := s.request(router, "POST", fmt.Sprintf("/api/v1/teams/%d/invites", teamId), s.Player2Token, map[string]any{
			"user_id": s.Organizer2.ID,
		})
		assert.Equal(s.T(), 403, w.Code)
	})
}

func (s *TestSuite) TestPayoutOnboarding() {
	router := s.newRouter()

	s.Run("Players cannot onboard for payouts", func() {
		w := s.request(router, "POST", "/api/v1/payouts/onboarding", s.PlayerToken, map[string]any{
			"bank_code":      "058",
			"account_number": "0123456789",
		})
		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Organizer onboarding stores the subaccount", func() {
		w := s.request(router, "POST", "/api/v1/payouts/onboarding", s.Organizer2Token, map[string]any{
			"bank_code":      "058",
			"account_number": "0123456789",
		})
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "ACCT_new", gjson.Get(body, "subaccount_code").String())
		assert.Equal(s.T(), "Test Organizer Two", gjson.Get(body, "account_name").String())

		var user models.User
		s.DB.Where(&models.User{ID: s.Organizer2.ID}).First(&user)
		assert.NotNil(s.T(), user.SubaccountCode)
		assert.Equal(s.T(), "ACCT_new", *user.SubaccountCode)

		wa := s.request(router, "GET", "/api/v1/payouts/account", s.Organizer2Token, nil)
		assert.Equal(s.T(), 200, wa.Code)
		assert.True(s.T(), gjson.Get(wa.Body.String(), "onboarded").Bool())
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
