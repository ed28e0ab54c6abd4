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
	"github.com/antarin-app/antarin/internal/pkg/storage"
	"github.com/antarin-app/antarin/services/users"
	"github.com/antarin-app/antarin/services/users/mocks"
)

func newTestUC(t *testing.T) (users.UserUC, *mocks.MockUserRepo, *mocks.MockFileStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockStore := mocks.NewMockFileStore(ctrl)

	return NewUserUC(&models.Config{}, mockRepo, mockStore), mockRepo, mockStore
}

func vehicleInput() users.VehicleInput {
	return users.VehicleInput{
		Brand:        "Toyota",
		Model:        "Avanza",
		Year:         2022,
		LicensePlate: "b 1234 xyz",
		Capacity:     6,
		Category:     models.VehicleCategoryStandard,
		PricePerKm:   4000,
		BaseFare:     25000,
	}
}

func TestRegisterClient_AutoApproved(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, models.UserTypeClient, user.UserType)
			assert.True(t, user.IsVerified)
			assert.Equal(t, models.VerificationNone, user.VerificationStatus)
			assert.Equal(t, "sari@example.com", user.Email)
			return nil
		})

	user, err := uc.RegisterClient(context.Background(), users.RegisterClientRequest{
		FirstName: "Sari",
		LastName:  "Wijaya",
		Email:     "Sari@Example.com",
		Phone:     "+628111222333",
	})

	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestRegisterClient_DuplicateEmail(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindValidation, "email already registered"))

	_, err := uc.RegisterClient(context.Background(), users.RegisterClientRequest{
		FirstName: "Sari",
		Email:     "sari@example.com",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterPartner_Success(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, models.UserTypePartner, user.UserType)
			assert.False(t, user.IsVerified)
			assert.Equal(t, models.VerificationPending, user.VerificationStatus)
			return nil
		})
	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vehicle *models.Vehicle) error {
			// New vehicles stay inactive until verification approves them
			assert.Equal(t, models.VehicleStatusInactive, vehicle.Status)
			assert.Equal(t, "B 1234 XYZ", vehicle.LicensePlate)
			return nil
		})
	mockRepo.EXPECT().
		UpsertDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, document *models.Document) error {
			assert.Equal(t, models.DocumentTypeDriverLicense, document.Type)
			assert.NotNil(t, document.VehicleID)
			return nil
		})

	user, err := uc.RegisterPartner(context.Background(), users.RegisterPartnerRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@example.com",
		Vehicle:   vehicleInput(),
		Document: users.DocumentInput{
			Type:       models.DocumentTypeDriverLicense,
			StorageRef: "documents/abc/driver_license/xyz",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, user.VerificationStatus)
}

func TestRegisterPartner_VehicleStepFailureRollsBackUser(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	var createdUserID uuid.UUID

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			createdUserID = user.ID
			return nil
		})
	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindValidation, "license plate already registered"))
	mockRepo.EXPECT().
		DeleteUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID) error {
			assert.Equal(t, createdUserID, userID)
			return nil
		})

	_, err := uc.RegisterPartner(context.Background(), users.RegisterPartnerRequest{
		FirstName: "Budi",
		Email:     "budi@example.com",
		Vehicle:   vehicleInput(),
		Document: users.DocumentInput{
			Type:       models.DocumentTypeDriverLicense,
			StorageRef: "documents/abc/driver_license/xyz",
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterPartner_DocumentStepFailureRollsBackBoth(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpsertDocument(gomock.Any(), gomock.Any()).Return(assert.AnError)
	mockRepo.EXPECT().DeleteVehicle(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.RegisterPartner(context.Background(), users.RegisterPartnerRequest{
		FirstName: "Budi",
		Email:     "budi@example.com",
		Vehicle:   vehicleInput(),
		Document: users.DocumentInput{
			Type:       models.DocumentTypeDriverLicense,
			StorageRef: "documents/abc/driver_license/xyz",
		},
	})

	require.Error(t, err)
}

func TestRegisterVehicle_DuplicatePlate(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	partnerID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), partnerID).Return(&models.User{
		ID:       partnerID,
		UserType: models.UserTypePartner,
	}, nil)
	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindValidation, "license plate already registered"))

	_, err := uc.RegisterVehicle(context.Background(), partnerID, vehicleInput())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterVehicle_VerifiedPartnerGetsActiveVehicle(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	partnerID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), partnerID).Return(&models.User{
		ID:         partnerID,
		UserType:   models.UserTypePartner,
		IsVerified: true,
	}, nil)
	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vehicle *models.Vehicle) error {
			assert.Equal(t, models.VehicleStatusActive, vehicle.Status)
			return nil
		})

	vehicle, err := uc.RegisterVehicle(context.Background(), partnerID, vehicleInput())

	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusActive, vehicle.Status)
}

func TestRegisterVehicle_ClientRejected(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	clientID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), clientID).Return(&models.User{
		ID:       clientID,
		UserType: models.UserTypeClient,
	}, nil)

	_, err := uc.RegisterVehicle(context.Background(), clientID, vehicleInput())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRequestDocumentUpload(t *testing.T) {
	uc, mockRepo, mockStore := newTestUC(t)

	ownerID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil)
	mockStore.EXPECT().
		GenerateUploadURL(gomock.Any(), gomock.Any(), "image/jpeg").
		DoAndReturn(func(_ context.Context, key, _ string) (*storage.UploadTicket, error) {
			assert.Contains(t, key, "documents/"+ownerID.String())
			return &storage.UploadTicket{
				UploadURL:  "https://bucket.s3.amazonaws.com/" + key,
				StorageRef: key,
				ExpiresIn:  900,
			}, nil
		})

	ticket, err := uc.RequestDocumentUpload(context.Background(), ownerID, models.DocumentTypeDriverLicense, "image/jpeg")

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.UploadURL)
}

func TestSetVerificationStatus_Approve(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	partnerID := uuid.New()
	mockRepo.EXPECT().
		SetVerificationStatus(gomock.Any(), partnerID, models.VerificationApproved).
		Return(nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), partnerID).Return(&models.User{
		ID:                 partnerID,
		UserType:           models.UserTypePartner,
		IsVerified:         true,
		VerificationStatus: models.VerificationApproved,
	}, nil)

	user, err := uc.SetVerificationStatus(context.Background(), partnerID, models.VerificationApproved)

	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestSetVerificationStatus_UnsupportedValue(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.SetVerificationStatus(context.Background(), uuid.New(), models.VerificationPending)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetUser_PartnerIncludesFleet(t *testing.T) {
	uc, mockRepo, mockStore := newTestUC(t)

	partnerID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), partnerID).Return(&models.User{
		ID:              partnerID,
		UserType:        models.UserTypePartner,
		ProfileImageRef: "profiles/budi.jpg",
	}, nil)
	mockStore.EXPECT().
		GetURL(gomock.Any(), "profiles/budi.jpg").
		Return("https://bucket.s3.amazonaws.com/profiles/budi.jpg", nil)
	mockRepo.EXPECT().ListVehiclesByOwner(gomock.Any(), partnerID).Return([]models.Vehicle{
		{ID: uuid.New(), OwnerID: partnerID},
	}, nil)

	profile, err := uc.GetUser(context.Background(), partnerID)

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ProfileImageURL)
	assert.Len(t, profile.Vehicles, 1)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{
		ID:        userID,
		FirstName: "Sari",
		LastName:  "Wijaya",
		Phone:     "+628111222333",
	}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "Sari", user.FirstName)
			assert.Equal(t, "+628999888777", user.Phone)
			return nil
		})

	user, err := uc.UpdateProfile(context.Background(), userID, users.ProfileUpdate{
		Phone: "+628999888777",
	})

	require.NoError(t, err)
	assert.Equal(t, "+628999888777", user.Phone)
}
