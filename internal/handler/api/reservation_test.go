//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/handler/api"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"
	"hotelcore/tests/common/builder"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/common/testutil"
	commandsmock "hotelcore/tests/mock/commands"
	queriesmock "hotelcore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", shared.Actor{ID: uuid.New(), Name: "alice", Role: staff.RoleReception})
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.GET("/reservations/number/:number", authMiddleware, s.handler.GetByNumber)
	s.router.POST("/reservations/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", authMiddleware, s.handler.CheckOut)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestBody()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Number, body.Number)
		s.Equal("2025-03-10", body.CheckInDate)
		s.Equal("2025-03-13", body.CheckOutDate)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing guest_id", mutate: testutil.Field("guest_id", nil)},
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing rate_plan_id", mutate: testutil.Field("rate_plan_id", nil)},
			{name: "missing check_in_date", mutate: testutil.Field("check_in_date", nil)},
			{name: "missing check_out_date", mutate: testutil.Field("check_out_date", nil)},
			{name: "zero guest_count", mutate: testutil.Field("guest_count", 0)},
			{name: "malformed guest_id", mutate: testutil.Field("guest_id", "not-a-uuid")},
			{name: "malformed check_in_date", mutate: testutil.Field("check_in_date", "10.03.2025")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.Body(reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 carries the contested stay window", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &errs.ConflictError{RoomID: b.Room.ID.String(), CheckIn: "2025-03-10", CheckOut: "2025-03-13"}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		httptest.AssertErrorDetail(s.T(), rec, "roomId", b.Room.ID.String())
		httptest.AssertErrorDetail(s.T(), rec, "checkIn", "2025-03-10")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandError   error
			expectedStatus int
		}{
			{name: "room conflict", commandError: &errs.ConflictError{RoomID: b.Room.ID.String(), CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, expectedStatus: http.StatusConflict},
			{name: "rate not found", commandError: &errs.RateNotFoundError{RatePlanID: b.RatePlanID.String(), CategoryID: b.Room.CategoryID.String()}, expectedStatus: http.StatusNotFound},
			{name: "unknown room", commandError: errs.NotFound("Room", b.Room.ID.String()), expectedStatus: http.StatusNotFound},
			{name: "stay in past", commandError: errs.Validation("checkInDate", "check-in date cannot be in the past"), expectedStatus: http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns reservation by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.Number, body.Number)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 on unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.NotFound("Reservation", id.String())).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestGetByNumber() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns reservation by number", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), returnView.Number).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/number/"+returnView.Number, nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: filters by status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), "CONFIRMED").
			Return([]*queries.ReservationView{returnView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=CONFIRMED", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: filters by room and date range", func() {
		roomID := returnView.RoomID
		s.mockQueries.EXPECT().ListByRoomAndRange(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return([]*queries.ReservationView{returnView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?room_id="+roomID.String()+"&from=2025-03-01&to=2025-03-31", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 without any filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?room_id="+uuid.NewString()+"&from=bad&to=2025-03-31", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	returnView := builder.NewReservationBuilder().BuildView()
	id := returnView.ID

	s.Run("success: check-in returns updated view", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any()).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: check-out returns updated view", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any()).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: cancel returns updated view", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on illegal transition", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any()).
			Return(nil, &errs.InvalidTransitionError{Entity: "Reservation", ID: id.String(), From: "CONFIRMED"}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
