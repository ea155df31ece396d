package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/store"
)

// NewTestDataset returns a small dataset covering both lookup tables.
func NewTestDataset() *models.Dataset {
	return &models.Dataset{
		Plants: []models.Plant{
			{Dutch: "Lavendel", Latin: "Lavandula angustifolia", Light: "Zon", Soil: "Arm", Moisture: "Droog"},
			{Dutch: "Varen", Latin: "Dryopteris filix-mas", Light: "Schaduw", Soil: "Rijk", Moisture: "Vochtig"},
		},
		SoilData: map[string]models.SoilEntry{
			"1": {Type: "Klei en veen", Fertility: "Rijk", Description: "Vruchtbare polders"},
		},
		MoistureData: map[string]models.MoistureEntry{
			"1": {Region: "Noord-Holland", Groundwater: "Hoog", Moisture: "Nat", Description: "Veel kwel"},
		},
	}
}

// TestContext contains test dependencies
type TestContext struct {
	Handler *Handler
	Store   *store.Store
}

// NewTestContext creates a handler over a populated store.
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Populate(NewTestDataset()))
	return &TestContext{Handler: NewHandler(s, Config{}), Store: s}
}

// NewFailedTestContext creates a handler whose dataset failed to load.
func NewFailedTestContext(t *testing.T) *TestContext {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Fail(errors.New("connection refused")))
	return &TestContext{Handler: NewHandler(s, Config{}), Store: s}
}

// NewPartialRequest creates a request as sent by the page script.
func NewPartialRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("HX-Request", "true")
	return req
}

// Document parses a recorded HTML response.
func Document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}
