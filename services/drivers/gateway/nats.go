package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/antarin-app/antarin/internal/pkg/constants"
	"github.com/antarin-app/antarin/internal/pkg/models"
	natspkg "github.com/antarin-app/antarin/internal/pkg/nats"
	"github.com/antarin-app/antarin/services/drivers"
)

// DriverGW publishes matcher events to NATS
type DriverGW struct {
	natsClient *natspkg.Client
}

// NewDriverGW creates a new matcher event gateway
func NewDriverGW(natsClient *natspkg.Client) drivers.DriverGW {
	return &DriverGW{
		natsClient: natsClient,
	}
}

// PublishPartnerBeacon publishes a partner.beacon event
func (g *DriverGW) PublishPartnerBeacon(ctx context.Context, update models.PartnerLocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal beacon: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectPartnerBeacon, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", constants.SubjectPartnerBeacon, err)
	}

	return nil
}
