package constants

// Redis key formats
const (
	// Auth service
	KeyRefreshToken = "auth:refresh:%s" // Format: auth:refresh:{token}

	// Fleet service
	KeyDriverLocation = "fleet:location:%s" // Format: fleet:location:{driver_id}
	KeyActiveDrivers  = "fleet:drivers"     // Set of driver IDs with a known location
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldUsername  = "username"
)
