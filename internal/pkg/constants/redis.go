package constants

// Redis key formats
const (
	// Partner location store
	KeyPartnerGeo       = "partner:geo"         // GeoHash set of live partner locations
	KeyPartnerLocation  = "partner:location:%s" // Format: partner:location:{partner_id}
	KeyAvailablePartner = "partners:available"  // Set of available partner IDs
)
