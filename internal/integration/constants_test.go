package integration_test

const (
	TestJWTSecret = "integration-test-secret"

	// Admin and regular users known to the auth service in test runs.
	TestAdminUserId = 1
	TestAdminEmail  = "admin@cinex.test"
	TestUserId      = 2
	TestUserEmail   = "moviegoer@cinex.test"

	// Cinema related constants
	TestCinemaName     = "Grand Plaza"
	TestCinemaAddress  = "1 Main St"
	TestCinemaDistrict = "Center"
	TestCinemaCity     = "Istanbul"
	TestCinemaPhone    = "+90 212 000 0000"
)
