//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"petcare-booking/internal/handler/api"
	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/tests/common/builder"
	"petcare-booking/tests/common/httptest"
	"petcare-booking/tests/common/testutil"
	commandsmock "petcare-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RatePlanHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockRatePlanCommands
	handler  *api.RatePlanHandler
	actorID  uuid.UUID
}

func (s *RatePlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockRatePlanCommands(s.mockCtrl)
	s.handler = api.NewRatePlanHandler(s.mockCmds)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", middleware.RoleProfessional)
		c.Next()
	}

	s.router.PATCH("/rate-plans/:id", authMiddleware, s.handler.Update)
}

func (s *RatePlanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRatePlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(RatePlanHandlerTestSuite))
}

func (s *RatePlanHandlerTestSuite) TestUpdate() {
	planBuilder := builder.NewRatePlanBuilder().With(func(b *builder.RatePlanBuilder) {
		b.ProfessionalID = s.actorID
	})
	plan := planBuilder.BuildDomain()
	url := "/rate-plans/" + plan.ID().String()

	baseRate := "25.00"
	reqBody := reqdto.UpdateRatePlanRequest{BaseRate: &baseRate}

	s.Run("success: returns 200 OK with the updated plan", func() {
		s.mockCmds.EXPECT().UpdateRatePlan(gomock.Any(), plan.ID(), s.actorID, gomock.Any()).
			Return(plan, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.RatePlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(plan.ID(), response.ID)
		s.Equal(plan.BaseRate().Text(), response.BaseRate)
		s.Equal(string(plan.Granularity()), response.Granularity)
	})

	s.Run("error: 422 Unprocessable Entity on bad field values", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "malformed money string", mutate: testutil.Field("base_rate", "twenty")},
			{name: "empty holiday rate", mutate: testutil.Field("holiday_rate", "")},
			{name: "unsupported time unit", mutate: testutil.Field("unit_of_time", "FORTNIGHT")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid rate plan values")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid plan UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rate-plans/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rate plan ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "plan not found",
				commandsError:  errs.ErrRatePlanNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rate plan not found",
			},
			{
				name:           "actor does not own the plan",
				commandsError:  errs.ErrNotPlanOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "invalid rates rejected by the domain",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCmds.EXPECT().UpdateRatePlan(gomock.Any(), plan.ID(), s.actorID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
