package handlers_test

import (
	"net/http"
	"testing"

	"github.com/ria/event-planner-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Location string  `json:"location"`
}

func TestVendorHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)
	auth := testutil.RegisterUser(t, ts, "vendors@example.com")

	testutil.NewVendorBuilder().WithName("Gala Catering").WithCategory("Catering").WithRating(4.8).Build(t, ts.DB.DB)
	testutil.NewVendorBuilder().WithName("Uptown Venue").WithCategory("Venue").WithRating(4.2).Build(t, ts.DB.DB)
	testutil.NewVendorBuilder().WithName("City Lights AV").WithCategory("Audio/Visual").WithRating(3.5).Build(t, ts.DB.DB)

	list := func(query string) []vendorPayload {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/vendors"+query), nil, auth.Token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var vendors []vendorPayload
		testutil.AssertJSONResponse(t, resp, &vendors)
		return vendors
	}

	t.Run("no filter", func(t *testing.T) {
		assert.Len(t, list(""), 3)
	})

	t.Run("category filter", func(t *testing.T) {
		vendors := list("?category=Catering")
		require.Len(t, vendors, 1)
		assert.Equal(t, "Gala Catering", vendors[0].Name)
	})

	t.Run("min rating filter", func(t *testing.T) {
		vendors := list("?minRating=4.0")
		assert.Len(t, vendors, 2)
	})

	t.Run("sorted by rating descending", func(t *testing.T) {
		vendors := list("")
		require.Len(t, vendors, 3)
		assert.Equal(t, "Gala Catering", vendors[0].Name)
	})
}

func TestVendorHandler_Search(t *testing.T) {
	ts := testutil.NewTestServer(t)
	auth := testutil.RegisterUser(t, ts, "search@example.com")

	testutil.NewVendorBuilder().WithName("Brooklyn Sound Co").WithLocation("Brooklyn").Build(t, ts.DB.DB)
	testutil.NewVendorBuilder().WithName("Queens Florals").WithLocation("Queens").Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/vendors/search?q=brooklyn"), nil, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vendors []vendorPayload
	testutil.AssertJSONResponse(t, resp, &vendors)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Brooklyn Sound Co", vendors[0].Name)

	t.Run("missing query", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/vendors/search"), nil, auth.Token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestVendorHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)
	auth := testutil.RegisterUser(t, ts, "vendor-get@example.com")

	vendor := testutil.NewVendorBuilder().WithName("Midtown Stage").Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/vendors/"+vendor.ID.String()), nil, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload vendorPayload
	testutil.AssertJSONResponse(t, resp, &payload)
	assert.Equal(t, "Midtown Stage", payload.Name)

	t.Run("unknown vendor", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/vendors/00000000-0000-0000-0000-000000000000"), nil, auth.Token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
