package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeGeocoder struct {
	code string
	err  error

	gotLat float64
	gotLon float64
}

func (f *fakeGeocoder) CountryCode(_ context.Context, latitude, longitude float64) (string, error) {
	f.gotLat = latitude
	f.gotLon = longitude
	return f.code, f.err
}

func geocodeRequestWith(t *testing.T, g *fakeGeocoder, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, "/api/geocode", strings.NewReader(body))
	NewGeocodeHandler(g).Resolve(recorder, request)
	return recorder
}

func TestGeocodeResolve(t *testing.T) {
	geocoder := &fakeGeocoder{code: "DE"}
	recorder := geocodeRequestWith(t, geocoder, http.MethodPost, `{"latitude":52.52,"longitude":13.405}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body)
	}
	var resp geocodeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.CountryCode != "DE" {
		t.Fatalf("countryCode = %q", resp.CountryCode)
	}
	if geocoder.gotLat != 52.52 || geocoder.gotLon != 13.405 {
		t.Fatalf("coordinates passed as %v, %v", geocoder.gotLat, geocoder.gotLon)
	}
}

func TestGeocodeRejectsNonPost(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		recorder := geocodeRequestWith(t, &fakeGeocoder{code: "DE"}, method, `{"latitude":0,"longitude":0}`)
		if recorder.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: status = %d, want 405", method, recorder.Code)
		}
	}
}

func TestGeocodeValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"invalid json", `{"latitude":`, "Invalid JSON in request body"},
		{"missing latitude", `{"longitude":10}`, "Invalid latitude: must be between -90 and 90"},
		{"missing longitude", `{"latitude":10}`, "Invalid longitude: must be between -180 and 180"},
		{"latitude too high", `{"latitude":90.1,"longitude":0}`, "Invalid latitude: must be between -90 and 90"},
		{"latitude too low", `{"latitude":-90.1,"longitude":0}`, "Invalid latitude: must be between -90 and 90"},
		{"longitude too high", `{"latitude":0,"longitude":180.1}`, "Invalid longitude: must be between -180 and 180"},
		{"longitude too low", `{"latitude":0,"longitude":-180.1}`, "Invalid longitude: must be between -180 and 180"},
	}
	for _, tc := range tests {
		recorder := geocodeRequestWith(t, &fakeGeocoder{code: "DE"}, http.MethodPost, tc.body)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, recorder.Code)
		}
		envelope := decodeEnvelope(t, recorder)
		if envelope.Error != tc.wantError {
			t.Fatalf("%s: error = %q, want %q", tc.name, envelope.Error, tc.wantError)
		}
	}
}

func TestGeocodeAcceptsBoundaryValues(t *testing.T) {
	bodies := []string{
		`{"latitude":90,"longitude":180}`,
		`{"latitude":-90,"longitude":-180}`,
		`{"latitude":0,"longitude":0}`,
	}
	for _, body := range bodies {
		recorder := geocodeRequestWith(t, &fakeGeocoder{code: "US"}, http.MethodPost, body)
		if recorder.Code != http.StatusOK {
			t.Fatalf("body %s: status = %d, want 200", body, recorder.Code)
		}
	}
}

func TestGeocodeDownstreamFailure(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("upstream down")}
	recorder := geocodeRequestWith(t, geocoder, http.MethodPost, `{"latitude":1,"longitude":1}`)
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", recorder.Code)
	}
	if envelope := decodeEnvelope(t, recorder); envelope.Error != "Failed to determine country from coordinates" {
		t.Fatalf("error = %q", envelope.Error)
	}
}
