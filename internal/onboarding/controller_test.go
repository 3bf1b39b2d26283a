package onboarding

import (
	"context"
	"errors"
	"testing"

	"agrihub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) SetOnboardingCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrganizationRepository) List(ctx context.Context, limit, offset int) ([]*models.Organization, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Organization), args.Error(1)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *models.OrganizationMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) FirstActiveByUser(ctx context.Context, userID uuid.UUID) (*models.OrganizationMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrganizationMembership), args.Error(1)
}

func (m *MockMembershipRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.OrganizationMembership, error) {
	args := m.Called(ctx, orgID, limit, offset)
	return args.Get(0).([]*models.OrganizationMembership), args.Error(1)
}

type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) Create(ctx context.Context, farm *models.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Farm, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farm), args.Error(1)
}

func (m *MockFarmRepository) Update(ctx context.Context, farm *models.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockFarmRepository) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*models.Farm, error) {
	args := m.Called(ctx, orgID, limit, offset)
	return args.Get(0).([]*models.Farm), args.Error(1)
}

func (m *MockFarmRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int, error) {
	args := m.Called(ctx, orgID)
	return args.Int(0), args.Error(1)
}

type ControllerTestSuite struct {
	suite.Suite
	profiles    *MockProfileRepository
	orgs        *MockOrganizationRepository
	memberships *MockMembershipRepository
	farms       *MockFarmRepository
	controller  *Controller
	ctx         context.Context
	userID      uuid.UUID
	orgID       uuid.UUID
}

func (suite *ControllerTestSuite) SetupTest() {
	suite.profiles = &MockProfileRepository{}
	suite.orgs = &MockOrganizationRepository{}
	suite.memberships = &MockMembershipRepository{}
	suite.farms = &MockFarmRepository{}
	suite.controller = NewController(suite.profiles, suite.orgs, suite.memberships, suite.farms)
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.profiles.Test(suite.T())
	suite.orgs.Test(suite.T())
	suite.memberships.Test(suite.T())
	suite.farms.Test(suite.T())
}

func (suite *ControllerTestSuite) TearDownTest() {
	suite.profiles.AssertExpectations(suite.T())
	suite.orgs.AssertExpectations(suite.T())
	suite.memberships.AssertExpectations(suite.T())
	suite.farms.AssertExpectations(suite.T())
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (suite *ControllerTestSuite) completeProfile() *models.UserProfile {
	return &models.UserProfile{ID: suite.userID, FirstName: "Amina", LastName: "Haddad"}
}

func (suite *ControllerTestSuite) activeMembership() *models.OrganizationMembership {
	return &models.OrganizationMembership{
		ID:             uuid.New(),
		UserID:         suite.userID,
		OrganizationID: suite.orgID,
		Role:           "owner",
		IsActive:       true,
	}
}

func (suite *ControllerTestSuite) fullRequest() CompleteRequest {
	location := "Souss Valley"
	size := 12.5
	unit := "ha"
	return CompleteRequest{
		FirstName:    "Amina",
		LastName:     "Haddad",
		Organization: "Atlas Farms",
		FarmName:     "Atlas Main",
		FarmLocation: &location,
		FarmSize:     &size,
		FarmSizeUnit: &unit,
	}
}

func (suite *ControllerTestSuite) TestProbe_FreshUserResumesAtProfile() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)

	status, err := suite.controller.Probe(suite.ctx, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), StepProfile, status.Next)
	assert.False(suite.T(), status.Done())
}

func (suite *ControllerTestSuite) TestProbe_ProfileOnlyResumesAtOrganization() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)

	status, err := suite.controller.Probe(suite.ctx, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), StepOrganization, status.Next)
}

func (suite *ControllerTestSuite) TestProbe_OrganizationWithoutFarmResumesAtFarm() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(suite.activeMembership(), nil)
	suite.farms.On("CountByOrganization", suite.ctx, suite.orgID).Return(0, nil)

	status, err := suite.controller.Probe(suite.ctx, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), StepFarm, status.Next)
	assert.Equal(suite.T(), suite.orgID, *status.OrganizationID)
}

func (suite *ControllerTestSuite) TestProbe_EverythingPresentIsDone() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(suite.activeMembership(), nil)
	suite.farms.On("CountByOrganization", suite.ctx, suite.orgID).Return(2, nil)

	status, err := suite.controller.Probe(suite.ctx, suite.userID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
}

func (suite *ControllerTestSuite) TestProbe_BlankNamesCountAsIncompleteProfile() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(&models.UserProfile{ID: suite.userID}, nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)

	status, err := suite.controller.Probe(suite.ctx, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), StepProfile, status.Next)
}

func (suite *ControllerTestSuite) TestComplete_FreshUserRunsAllSteps() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.profiles.On("Upsert", suite.ctx, mock.AnythingOfType("*models.UserProfile")).Return(nil)
	suite.orgs.On("Create", suite.ctx, mock.AnythingOfType("*models.Organization")).Return(nil).Run(func(args mock.Arguments) {
		org := args.Get(1).(*models.Organization)
		assert.Equal(suite.T(), "Atlas Farms", org.Name)
		assert.Equal(suite.T(), "atlas-farms", org.Slug)
	})
	suite.memberships.On("Create", suite.ctx, mock.AnythingOfType("*models.OrganizationMembership")).Return(nil).Run(func(args mock.Arguments) {
		membership := args.Get(1).(*models.OrganizationMembership)
		assert.Equal(suite.T(), suite.userID, membership.UserID)
		assert.Equal(suite.T(), "owner", membership.Role)
		assert.True(suite.T(), membership.IsActive)
	})
	suite.farms.On("Create", suite.ctx, mock.AnythingOfType("*models.Farm")).Return(nil).Run(func(args mock.Arguments) {
		farm := args.Get(1).(*models.Farm)
		assert.Equal(suite.T(), models.FarmTypeMain, farm.Type)
	})
	suite.orgs.On("SetOnboardingCompleted", suite.ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

	status, err := suite.controller.Complete(suite.ctx, suite.userID, suite.fullRequest())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
}

func (suite *ControllerTestSuite) TestComplete_SkipsProfileWhenAlreadyComplete() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.orgs.On("Create", suite.ctx, mock.AnythingOfType("*models.Organization")).Return(nil)
	suite.memberships.On("Create", suite.ctx, mock.AnythingOfType("*models.OrganizationMembership")).Return(nil)
	suite.farms.On("Create", suite.ctx, mock.AnythingOfType("*models.Farm")).Return(nil)
	suite.orgs.On("SetOnboardingCompleted", suite.ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

	status, err := suite.controller.Complete(suite.ctx, suite.userID, suite.fullRequest())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
	suite.profiles.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *ControllerTestSuite) TestComplete_AlreadyDoneIsIdempotent() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(suite.activeMembership(), nil)
	suite.farms.On("CountByOrganization", suite.ctx, suite.orgID).Return(1, nil)

	status, err := suite.controller.Complete(suite.ctx, suite.userID, suite.fullRequest())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
	suite.orgs.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.farms.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ControllerTestSuite) TestComplete_MembershipFailureIsFatal() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.orgs.On("Create", suite.ctx, mock.AnythingOfType("*models.Organization")).Return(nil)
	suite.memberships.On("Create", suite.ctx, mock.AnythingOfType("*models.OrganizationMembership")).Return(errors.New("insert failed"))

	_, err := suite.controller.Complete(suite.ctx, suite.userID, suite.fullRequest())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "membership")
	suite.farms.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ControllerTestSuite) TestComplete_ManagerAssignmentFailureIsNonFatal() {
	managerName := "Karim Alaoui"
	req := suite.fullRequest()
	req.ManagerName = &managerName

	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(suite.activeMembership(), nil)
	suite.farms.On("CountByOrganization", suite.ctx, suite.orgID).Return(0, nil)
	suite.farms.On("Create", suite.ctx, mock.AnythingOfType("*models.Farm")).Return(nil)
	suite.farms.On("Update", suite.ctx, mock.AnythingOfType("*models.Farm")).Return(errors.New("update failed"))
	suite.orgs.On("SetOnboardingCompleted", suite.ctx, suite.orgID).Return(nil)

	status, err := suite.controller.Complete(suite.ctx, suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
}

func (suite *ControllerTestSuite) TestComplete_CompletedFlagFailureIsNonFatal() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(suite.completeProfile(), nil)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(suite.activeMembership(), nil)
	suite.farms.On("CountByOrganization", suite.ctx, suite.orgID).Return(0, nil)
	suite.farms.On("Create", suite.ctx, mock.AnythingOfType("*models.Farm")).Return(nil)
	suite.orgs.On("SetOnboardingCompleted", suite.ctx, suite.orgID).Return(errors.New("flag write failed"))

	status, err := suite.controller.Complete(suite.ctx, suite.userID, suite.fullRequest())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.Done())
}

func (suite *ControllerTestSuite) TestComplete_MissingNamesRejected() {
	suite.profiles.On("GetByID", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)
	suite.memberships.On("FirstActiveByUser", suite.ctx, suite.userID).Return(nil, pgx.ErrNoRows)

	req := suite.fullRequest()
	req.FirstName = ""

	_, err := suite.controller.Complete(suite.ctx, suite.userID, req)

	assert.Error(suite.T(), err)
	suite.profiles.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}
