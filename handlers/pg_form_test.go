package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormContext(t *testing.T, form url.Values) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pg", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func validCreateForm() url.Values {
	return url.Values{
		"name":             {"Sunrise PG"},
		"description":      {"Comfortable rooms near the station"},
		"address":          {`{"street":"12 MG Road","city":"Pune","state":"Maharashtra","pincode":"411001"}`},
		"genderPreference": {"boys"},
		"roomType":         {"shared"},
		"rent":             {"10000"},
		"capacity":         {"2"},
		"contactNumber":    {"9876543210"},
		"contactEmail":     {"owner@example.com"},
	}
}

func TestParsePGFormValid(t *testing.T) {
	c := newFormContext(t, validCreateForm())

	form, errs := parsePGForm(c, false)
	require.Nil(t, errs)
	assert.Equal(t, "Sunrise PG", form.Name)
	assert.Equal(t, "Pune", form.Address.City)
	assert.Equal(t, 10000.0, form.Rent)
	assert.Equal(t, 2, form.Capacity)
}

func TestParsePGFormMissingAddressField(t *testing.T) {
	values := validCreateForm()
	values.Set("address", `{"street":"12 MG Road","city":"Pune"}`)
	c := newFormContext(t, values)

	_, errs := parsePGForm(c, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "address")
}

func TestParsePGFormUnknownAmenity(t *testing.T) {
	values := validCreateForm()
	values.Set("amenities", `["wifi","helipad"]`)
	c := newFormContext(t, values)

	_, errs := parsePGForm(c, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["amenities"], "helipad")
}

func TestParsePGFormOccupiedExceedsCapacity(t *testing.T) {
	values := validCreateForm()
	values.Set("occupied", "3")
	c := newFormContext(t, values)

	_, errs := parsePGForm(c, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "occupied")
}

func TestParsePGFormPartialSkipsRequired(t *testing.T) {
	values := url.Values{"rent": {"12000"}}
	c := newFormContext(t, values)

	form, errs := parsePGForm(c, true)
	require.Nil(t, errs)
	assert.Equal(t, 12000.0, form.Rent)
	assert.Empty(t, form.Name)
}

func TestParsePGFormInvalidEnum(t *testing.T) {
	values := validCreateForm()
	values.Set("genderPreference", "anyone")
	c := newFormContext(t, values)

	_, errs := parsePGForm(c, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "genderPreference")
}
