package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/trips"
	"github.com/antarin-app/antarin/services/trips/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			SearchRadiusKm:  10,
			AverageSpeedKmh: 40,
		},
		Pricing: models.PricingConfig{
			BaseFare:  25000,
			PerKmRate: 4000,
			TaxRate:   0.1,
			Currency:  "IDR",
		},
	}
}

func testClient(id uuid.UUID) *models.User {
	return &models.User{
		ID:        id,
		UserType:  models.UserTypeClient,
		FirstName: "Sari",
		LastName:  "Wijaya",
	}
}

func testPartner(id uuid.UUID) *models.User {
	return &models.User{
		ID:                 id,
		UserType:           models.UserTypePartner,
		FirstName:          "Budi",
		LastName:           "Santoso",
		IsVerified:         true,
		VerificationStatus: models.VerificationApproved,
	}
}

func testVehicle(id, ownerID uuid.UUID) *models.Vehicle {
	return &models.Vehicle{
		ID:       id,
		OwnerID:  ownerID,
		Brand:    "Toyota",
		Model:    "Avanza",
		Capacity: 6,
		Status:   models.VehicleStatusActive,
	}
}

func TestCreateTripRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	clientID := uuid.New()
	pickup := models.Location{Latitude: -6.175392, Longitude: 106.827153, Address: "Monas"}
	dropoff := models.Location{Latitude: -6.301446, Longitude: 106.652819, Address: "BSD"}

	mockRepo.EXPECT().GetUser(gomock.Any(), clientID).Return(testClient(clientID), nil)
	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			assert.Equal(t, models.TripStatusRequested, trip.Status)
			assert.Equal(t, clientID, trip.ClientID)
			assert.Nil(t, trip.PartnerID)
			assert.Greater(t, trip.EstimatedDistance, 0.0)
			assert.Greater(t, trip.EstimatedDuration, 0)
			assert.Equal(t, 25000.0, trip.Pricing.BaseFare)
			assert.InDelta(t, trip.Pricing.BaseFare+trip.Pricing.DistanceFare+trip.Pricing.Taxes,
				trip.Pricing.Total, 0.001)
			return nil
		})
	mockGW.EXPECT().PublishTripRequested(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.CreateTripRequest(context.Background(), clientID, pickup, dropoff,
		models.TripDetails{Passengers: 2}, models.TripTiming{})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusRequested, trip.Status)
	assert.Equal(t, "IDR", trip.Pricing.Currency)
}

func TestCreateTripRequest_PartnerCannotBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	partnerID := uuid.New()
	mockRepo.EXPECT().GetUser(gomock.Any(), partnerID).Return(testPartner(partnerID), nil)

	_, err := uc.CreateTripRequest(context.Background(), partnerID,
		models.Location{}, models.Location{}, models.TripDetails{Passengers: 1}, models.TripTiming{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateTripRequest_ScheduledWithoutDeparture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	clientID := uuid.New()
	mockRepo.EXPECT().GetUser(gomock.Any(), clientID).Return(testClient(clientID), nil)

	_, err := uc.CreateTripRequest(context.Background(), clientID,
		models.Location{}, models.Location{},
		models.TripDetails{Passengers: 1}, models.TripTiming{IsScheduled: true})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAcceptTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()
	vehicleID := uuid.New()

	accepted := &models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		VehicleID: &vehicleID,
		Status:    models.TripStatusAccepted,
	}

	mockRepo.EXPECT().GetUser(gomock.Any(), partnerID).Return(testPartner(partnerID), nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(testVehicle(vehicleID, partnerID), nil)
	mockRepo.EXPECT().AcceptTrip(gomock.Any(), tripID, partnerID, vehicleID).Return(true, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(accepted, nil)
	mockGW.EXPECT().PublishTripAccepted(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.AcceptTrip(context.Background(), tripID, partnerID, vehicleID, 7)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusAccepted, trip.Status)
	require.NotNil(t, trip.PartnerID)
	assert.Equal(t, partnerID, *trip.PartnerID)
}

func TestAcceptTrip_AlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	partnerID := uuid.New()
	otherPartner := uuid.New()
	vehicleID := uuid.New()

	taken := &models.Trip{
		ID:        tripID,
		ClientID:  uuid.New(),
		PartnerID: &otherPartner,
		Status:    models.TripStatusAccepted,
	}

	mockRepo.EXPECT().GetUser(gomock.Any(), partnerID).Return(testPartner(partnerID), nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(testVehicle(vehicleID, partnerID), nil)
	mockRepo.EXPECT().AcceptTrip(gomock.Any(), tripID, partnerID, vehicleID).Return(false, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(taken, nil)

	_, err := uc.AcceptTrip(context.Background(), tripID, partnerID, vehicleID, 5)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
	assert.Contains(t, err.Error(), "no longer available")
}

func TestAcceptTrip_VehicleNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	partnerID := uuid.New()
	vehicleID := uuid.New()

	mockRepo.EXPECT().GetUser(gomock.Any(), partnerID).Return(testPartner(partnerID), nil)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(testVehicle(vehicleID, uuid.New()), nil)

	_, err := uc.AcceptTrip(context.Background(), uuid.New(), partnerID, vehicleID, 5)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAcceptTrip_UnverifiedPartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	partnerID := uuid.New()
	unverified := testPartner(partnerID)
	unverified.IsVerified = false

	mockRepo.EXPECT().GetUser(gomock.Any(), partnerID).Return(unverified, nil)

	_, err := uc.AcceptTrip(context.Background(), uuid.New(), partnerID, uuid.New(), 5)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestRefuseTrip_KeepsTripOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	partnerID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		ClientID: uuid.New(),
		Status:   models.TripStatusRequested,
	}, nil)
	mockRepo.EXPECT().RecordDecline(gomock.Any(), tripID, partnerID, "too far").Return(nil)
	mockGW.EXPECT().PublishTripDeclined(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RefuseTrip(context.Background(), tripID, partnerID, "too far")

	assert.NoError(t, err)
}

func TestRefuseTrip_NotOpenAnymore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		ClientID: uuid.New(),
		Status:   models.TripStatusAccepted,
	}, nil)

	err := uc.RefuseTrip(context.Background(), tripID, uuid.New(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestAdvanceTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()

	current := &models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		Status:    models.TripStatusAccepted,
	}
	updated := &models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		Status:    models.TripStatusDriverOnWay,
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(current, nil)
	mockRepo.EXPECT().
		AdvanceStatus(gomock.Any(), tripID, partnerID, models.TripStatusAccepted, models.TripStatusDriverOnWay).
		Return(true, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(updated, nil)
	mockGW.EXPECT().PublishTripStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.AdvanceTrip(context.Background(), tripID, partnerID, models.TripStatusDriverOnWay)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDriverOnWay, trip.Status)
}

func TestAdvanceTrip_SkippingStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	partnerID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:        tripID,
		ClientID:  uuid.New(),
		PartnerID: &partnerID,
		Status:    models.TripStatusAccepted,
	}, nil)

	_, err := uc.AdvanceTrip(context.Background(), tripID, partnerID, models.TripStatusInProgress)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestAdvanceTrip_WrongPartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	assignedPartner := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:        tripID,
		ClientID:  uuid.New(),
		PartnerID: &assignedPartner,
		Status:    models.TripStatusAccepted,
	}, nil)

	_, err := uc.AdvanceTrip(context.Background(), tripID, uuid.New(), models.TripStatusDriverOnWay)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAdvanceTrip_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	partnerID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:        tripID,
		ClientID:  uuid.New(),
		PartnerID: &partnerID,
		Status:    models.TripStatusAccepted,
	}, nil)
	mockRepo.EXPECT().
		AdvanceStatus(gomock.Any(), tripID, partnerID, models.TripStatusAccepted, models.TripStatusDriverOnWay).
		Return(false, nil)

	_, err := uc.AdvanceTrip(context.Background(), tripID, partnerID, models.TripStatusDriverOnWay)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestCancelTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()

	active := &models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		Status:    models.TripStatusAccepted,
	}
	cancelled := &models.Trip{
		ID:                 tripID,
		ClientID:           clientID,
		PartnerID:          &partnerID,
		Status:             models.TripStatusCancelled,
		CancellationReason: "change of plans",
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(active, nil)
	mockRepo.EXPECT().CancelTrip(gomock.Any(), tripID, "change of plans").Return(true, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(cancelled, nil)
	mockGW.EXPECT().PublishTripCancelled(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			// Client cancelled, so the partner gets notified
			assert.Equal(t, partnerID, n.UserID)
			return nil
		})

	trip, err := uc.CancelTrip(context.Background(), tripID, clientID, "change of plans")

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestCancelTrip_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		ClientID: clientID,
		Status:   models.TripStatusCompleted,
	}, nil)

	_, err := uc.CancelTrip(context.Background(), tripID, clientID, "too late")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestCancelTrip_NotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:       tripID,
		ClientID: uuid.New(),
		Status:   models.TripStatusRequested,
	}, nil)

	_, err := uc.CancelTrip(context.Background(), tripID, uuid.New(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestGetTrip_ParticipantOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	trip := &models.Trip{ID: tripID, ClientID: clientID, Status: models.TripStatusRequested}

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil).Times(2)

	got, err := uc.GetTrip(context.Background(), tripID, clientID)
	require.NoError(t, err)
	assert.Equal(t, tripID, got.ID)

	_, err = uc.GetTrip(context.Background(), tripID, uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestListTrips_FilterMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	userID := uuid.New()

	mockRepo.EXPECT().
		ListTripsByUser(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, status *models.TripStatus) ([]*models.Trip, error) {
			require.NotNil(t, status)
			assert.Equal(t, models.TripStatusRequested, *status)
			return []*models.Trip{}, nil
		})

	_, err := uc.ListTrips(context.Background(), userID, "searching")
	require.NoError(t, err)

	_, err = uc.ListTrips(context.Background(), userID, "bogus")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestTripLifecycle_FullForwardWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()

	steps := []models.TripStatus{
		models.TripStatusDriverOnWay,
		models.TripStatusArrivedAtPickup,
		models.TripStatusInProgress,
		models.TripStatusCompleted,
	}

	status := models.TripStatusAccepted
	for _, next := range steps {
		from := status
		to := next

		mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
			ID:        tripID,
			ClientID:  clientID,
			PartnerID: &partnerID,
			Status:    from,
		}, nil)
		mockRepo.EXPECT().
			AdvanceStatus(gomock.Any(), tripID, partnerID, from, to).
			Return(true, nil)
		mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
			ID:        tripID,
			ClientID:  clientID,
			PartnerID: &partnerID,
			Status:    to,
		}, nil)
		mockGW.EXPECT().PublishTripStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

		trip, err := uc.AdvanceTrip(context.Background(), tripID, partnerID, next)
		require.NoError(t, err)
		assert.Equal(t, next, trip.Status)

		status = next
	}

	assert.True(t, status.IsTerminal())
}

func TestSubmitReview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()
	completedAt := time.Now()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:          tripID,
		ClientID:    clientID,
		PartnerID:   &partnerID,
		Status:      models.TripStatusCompleted,
		CompletedAt: &completedAt,
	}, nil)
	mockRepo.EXPECT().
		CreateReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *models.Review) (float64, error) {
			assert.Equal(t, tripID, review.TripID)
			assert.Equal(t, 5, review.Rating)
			return 4.8, nil
		})
	mockGW.EXPECT().
		PublishReviewSubmitted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ReviewEvent) error {
			assert.Equal(t, 4.8, event.NewAverage)
			return nil
		})
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	review, err := uc.SubmitReview(context.Background(), trips.SubmitReviewRequest{
		TripID:     tripID,
		ReviewerID: clientID,
		RevieweeID: partnerID,
		Rating:     5,
		Comment:    "great ride",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestSubmitReview_TripNotCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		Status:    models.TripStatusInProgress,
	}, nil)

	_, err := uc.SubmitReview(context.Background(), trips.SubmitReviewRequest{
		TripID:     tripID,
		ReviewerID: clientID,
		RevieweeID: partnerID,
		Rating:     4,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	_, err := uc.SubmitReview(context.Background(), trips.SubmitReviewRequest{
		TripID:     uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		Rating:     6,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSubmitReview_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(testConfig(), mockRepo, mockGW)

	tripID := uuid.New()
	clientID := uuid.New()
	partnerID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:        tripID,
		ClientID:  clientID,
		PartnerID: &partnerID,
		Status:    models.TripStatusCompleted,
	}, nil)
	mockRepo.EXPECT().
		CreateReview(gomock.Any(), gomock.Any()).
		Return(0.0, apperrors.New(apperrors.KindValidation, "review already submitted for this trip"))

	_, err := uc.SubmitReview(context.Background(), trips.SubmitReviewRequest{
		TripID:     tripID,
		ReviewerID: clientID,
		RevieweeID: partnerID,
		Rating:     4,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
