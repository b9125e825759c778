package constants

// Redis key layout
const (
	// KeyAvailableProviders is the set of provider IDs currently accepting work
	KeyAvailableProviders = "providers:available"

	// KeyProviderGeo formats the hash holding a provider's last reported coordinates
	KeyProviderGeo = "provider:geo:%s"

	// KeyLastPosition is the hash holding the device's last resolved position
	KeyLastPosition = "location:last"
)

// Hash field names
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldAccuracy  = "accuracy"
	FieldGeohash   = "geohash"
	FieldTimestamp = "timestamp"
)
