package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/drivers"
	"github.com/antarin-app/antarin/services/drivers/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			SearchRadiusKm:  10,
			AverageSpeedKmh: 30,
		},
		Pricing: models.PricingConfig{
			Currency: "IDR",
		},
	}
}

func partnerProfile(id uuid.UUID, name string, capacity int, baseFare float64) drivers.PartnerProfile {
	return drivers.PartnerProfile{
		ID:     id,
		Name:   name,
		Rating: 4.5,
		Vehicle: models.Vehicle{
			ID:       uuid.New(),
			OwnerID:  id,
			Brand:    "Toyota",
			Model:    "Avanza",
			Capacity: capacity,
			BaseFare: baseFare,
			Category: models.VehicleCategoryStandard,
			Status:   models.VehicleStatusActive,
		},
	}
}

func TestFindAvailableDrivers_OrderedByDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	near := uuid.New()
	far := uuid.New()

	mockEstimator.EXPECT().
		NearbyPartners(gomock.Any(), -6.2, 106.8, 10.0).
		Return([]drivers.NearbyPartner{
			{PartnerID: near.String(), DistanceKm: 1.2},
			{PartnerID: far.String(), DistanceKm: 4.8},
		}, nil)
	mockRepo.EXPECT().
		GetPartnerProfiles(gomock.Any(), gomock.Any(), models.VehicleCategory(""), 0).
		Return(map[uuid.UUID]drivers.PartnerProfile{
			near: partnerProfile(near, "Budi Santoso", 4, 50000),
			far:  partnerProfile(far, "Agus Pratama", 4, 60000),
		}, nil)
	mockRepo.EXPECT().
		GetActiveTripStatuses(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.TripStatus{}, nil)

	candidates, err := uc.FindAvailableDrivers(context.Background(), models.FindDriversRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, near.String(), candidates[0].ID)
	assert.Equal(t, 1.2, candidates[0].DistanceKm)
	assert.Equal(t, models.DriverAvailable, candidates[0].Status)
	assert.Equal(t, far.String(), candidates[1].ID)

	// ETA at 30 km/h: 1.2 km -> 2.4 min, rounds to 2
	assert.Equal(t, 2, candidates[0].EtaMinutes)

	// Fare band is base fare to 1.5x base fare
	assert.Equal(t, 50000, candidates[0].PriceRange.Min)
	assert.Equal(t, 75000, candidates[0].PriceRange.Max)
	assert.Equal(t, "IDR", candidates[0].PriceRange.Currency)
}

func TestFindAvailableDrivers_CapacityFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	// Four partners with vehicle capacities 2, 4, 4 and 7; asking for
	// min_capacity=4 must keep exactly the last three.
	capacities := []int{2, 4, 4, 7}
	ids := make([]uuid.UUID, len(capacities))
	nearby := make([]drivers.NearbyPartner, len(capacities))
	matching := make(map[uuid.UUID]drivers.PartnerProfile)
	for i, capacity := range capacities {
		ids[i] = uuid.New()
		nearby[i] = drivers.NearbyPartner{PartnerID: ids[i].String(), DistanceKm: float64(i) + 1}
		if capacity >= 4 {
			matching[ids[i]] = partnerProfile(ids[i], "Partner", capacity, 40000)
		}
	}

	mockEstimator.EXPECT().
		NearbyPartners(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nearby, nil)
	// The repository applies the capacity filter; the small vehicle never
	// comes back.
	mockRepo.EXPECT().
		GetPartnerProfiles(gomock.Any(), gomock.Any(), models.VehicleCategory(""), 4).
		Return(matching, nil)
	mockRepo.EXPECT().
		GetActiveTripStatuses(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.TripStatus{}, nil)

	candidates, err := uc.FindAvailableDrivers(context.Background(), models.FindDriversRequest{
		Latitude:    -6.2,
		Longitude:   106.8,
		MinCapacity: 4,
	})

	require.NoError(t, err)
	assert.Len(t, candidates, 3)
	for _, candidate := range candidates {
		assert.GreaterOrEqual(t, candidate.Vehicle.Capacity, 4)
	}
}

func TestFindAvailableDrivers_FinishingSoon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	free := uuid.New()
	midTrip := uuid.New()
	justAccepted := uuid.New()

	mockEstimator.EXPECT().
		NearbyPartners(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]drivers.NearbyPartner{
			{PartnerID: free.String(), DistanceKm: 1},
			{PartnerID: midTrip.String(), DistanceKm: 2},
			{PartnerID: justAccepted.String(), DistanceKm: 3},
		}, nil)
	mockRepo.EXPECT().
		GetPartnerProfiles(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]drivers.PartnerProfile{
			free:         partnerProfile(free, "Free", 4, 40000),
			midTrip:      partnerProfile(midTrip, "MidTrip", 4, 40000),
			justAccepted: partnerProfile(justAccepted, "Committed", 4, 40000),
		}, nil)
	mockRepo.EXPECT().
		GetActiveTripStatuses(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.TripStatus{
			midTrip:      models.TripStatusInProgress,
			justAccepted: models.TripStatusAccepted,
		}, nil)

	candidates, err := uc.FindAvailableDrivers(context.Background(), models.FindDriversRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, models.DriverAvailable, candidates[0].Status)
	assert.Equal(t, models.DriverFinishingSoon, candidates[1].Status)
	// A partner who just accepted another trip is not offered at all
	for _, candidate := range candidates {
		assert.NotEqual(t, justAccepted.String(), candidate.ID)
	}
}

func TestFindAvailableDrivers_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	mockEstimator.EXPECT().
		NearbyPartners(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]drivers.NearbyPartner{}, nil)

	candidates, err := uc.FindAvailableDrivers(context.Background(), models.FindDriversRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindCandidatesForTrip_SkipsDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	tripID := uuid.New()
	declined := uuid.New()
	fresh := uuid.New()

	mockRepo.EXPECT().
		GetDeclinedPartnerIDs(gomock.Any(), tripID).
		Return(map[uuid.UUID]bool{declined: true}, nil)
	mockEstimator.EXPECT().
		NearbyPartners(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]drivers.NearbyPartner{
			{PartnerID: declined.String(), DistanceKm: 0.5},
			{PartnerID: fresh.String(), DistanceKm: 2},
		}, nil)
	mockRepo.EXPECT().
		GetPartnerProfiles(gomock.Any(), []uuid.UUID{fresh}, gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]drivers.PartnerProfile{
			fresh: partnerProfile(fresh, "Fresh", 4, 40000),
		}, nil)
	mockRepo.EXPECT().
		GetActiveTripStatuses(gomock.Any(), []uuid.UUID{fresh}).
		Return(map[uuid.UUID]models.TripStatus{}, nil)

	candidates, err := uc.FindCandidatesForTrip(context.Background(), tripID, models.FindDriversRequest{
		Latitude:  -6.2,
		Longitude: 106.8,
	})

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, fresh.String(), candidates[0].ID)
}

func TestUpdatePartnerLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	update := models.PartnerLocationUpdate{
		PartnerID:   uuid.New().String(),
		Location:    models.Location{Latitude: -6.2, Longitude: 106.8},
		IsAvailable: true,
	}

	mockEstimator.EXPECT().UpdateLocation(gomock.Any(), update).Return(nil)
	mockGW.EXPECT().PublishPartnerBeacon(gomock.Any(), update).Return(nil)

	err := uc.UpdatePartnerLocation(context.Background(), update)
	assert.NoError(t, err)
}

func TestUpdatePartnerLocation_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockEstimator := mocks.NewMockDistanceEstimator(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(testConfig(), mockRepo, mockEstimator, mockGW)

	err := uc.UpdatePartnerLocation(context.Background(), models.PartnerLocationUpdate{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
