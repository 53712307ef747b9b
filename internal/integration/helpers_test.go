package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/layout"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func signToken(t testing.TB, userID int, email, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(userID),
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(TestJWTSecret))
	require.NoError(t, err)

	return signed
}

func adminHeaders(t testing.TB) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + signToken(t, TestAdminUserId, TestAdminEmail, "ADMIN"),
	}
}

func userHeaders(t testing.TB) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + signToken(t, TestUserId, TestUserEmail, "USER"),
	}
}

func resetDatabase(t testing.TB, app *TestApp) {
	_, err := app.DB.Exec(context.Background(),
		"TRUNCATE cinemas, auditoriums, seats, showtimes, showtime_seats, bookings RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	require.NoError(t, app.Redis.FlushAll(context.Background()).Err())
}

func seedCinema(t testing.TB, app *TestApp) int {
	cinema := &domain.Cinema{
		Name:     TestCinemaName,
		Address:  TestCinemaAddress,
		District: TestCinemaDistrict,
		City:     TestCinemaCity,
		Phone:    TestCinemaPhone,
	}

	require.NoError(t, app.CinemaRepo.Create(context.Background(), cinema))

	return cinema.ID
}

func seedAuditorium(t testing.TB, app *TestApp, cinemaID int, pattern layout.Pattern) *domain.Auditorium {
	auditorium := &domain.Auditorium{
		CinemaID: cinemaID,
		Name:     "Hall 1",
		Pattern:  pattern,
	}

	require.NoError(t, app.AuditoriumRepo.Create(context.Background(), auditorium))

	return auditorium
}

// seedShowtime creates a showtime with materialized seat state through
// the repository, which accepts past start times; only the handler
// rejects them.
func seedShowtime(t testing.TB, app *TestApp, auditoriumID int, start time.Time) *domain.Showtime {
	showtime := &domain.Showtime{
		ID:           uuid.NewString(),
		AuditoriumID: auditoriumID,
		MovieID:      1,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		BasePrice:    decimal.NewFromFloat(10.00),
	}

	require.NoError(t, app.ShowtimeRepo.Create(context.Background(), showtime))

	return showtime
}

func countRows(t testing.TB, app *TestApp, query string, args ...any) int {
	var count int
	require.NoError(t, app.DB.QueryRow(context.Background(), query, args...).Scan(&count))

	return count
}
