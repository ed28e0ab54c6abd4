package drivers

import (
	"context"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// DriverGW defines the interface for matcher event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/antarin-app/antarin/services/drivers DriverGW
type DriverGW interface {
	PublishPartnerBeacon(ctx context.Context, update models.PartnerLocationUpdate) error
}
