package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/catalog"
	"showcase/internal/curated"
	"showcase/internal/models"
	mock_productapi "showcase/internal/productapi/mocks"
	"showcase/internal/service"
	"showcase/internal/web"
)

func newRouter(t *testing.T, api *mock_productapi.MockProductAPI) *mux.Router {
	t.Helper()
	source, err := catalog.NewMock()
	require.NoError(t, err)
	projectService := service.NewProjectService(source, api, service.ProjectServiceConfig{
		Picker: curated.Picker{Intn: func(int) int { return 0 }},
	})
	handlers, err := web.NewHandlers(projectService)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	router.HandleFunc("/explore", handlers.ExploreHandler).Methods("GET")
	router.HandleFunc("/projects/{id}", handlers.ProjectHandler).Methods("GET")
	router.HandleFunc("/curated/{id}", handlers.CuratedProjectHandler).Methods("GET")
	router.PathPrefix("/static/").Handler(web.StaticHandler())
	return router
}

func get(router http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_productapi.NewMockProductAPI(ctrl)
	api.EXPECT().GetProducts(gomock.Any(), 0).Return([]models.ProductFromAPI{
		{ID: 1, Title: "Essence Mascara", Category: "fragrances", Thumbnail: "https://cdn.example.com/1.png"},
		{ID: 2, Title: "Annibale Bed", Category: "furniture", Thumbnail: "https://cdn.example.com/2.png"},
		{ID: 3, Title: "Apple", Category: "groceries", Thumbnail: "https://cdn.example.com/3.png"},
	}, nil)

	w := get(newRouter(t, api), "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Curated picks")
	assert.Contains(t, body, "Annibale Bed")
	assert.Contains(t, body, "Plant Watering Monitor")
	assert.Contains(t, body, "Web Controlled Lamp", "featured grid shows nine projects")
	assert.NotContains(t, body, "Retro Game Console")
	assert.Contains(t, body, `data-api="/api/newsletter"`)
	assert.Contains(t, body, `data-page="next"`)
	assert.NotContains(t, body, `data-page="prev"`)
}

func TestHomeHandler_CuratedUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_productapi.NewMockProductAPI(ctrl)
	api.EXPECT().GetProducts(gomock.Any(), 0).Return(nil, errors.New("upstream down"))

	w := get(newRouter(t, api), "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Curated picks")
	assert.Contains(t, w.Body.String(), "Plant Watering Monitor")
}

func TestExploreHandler(t *testing.T) {
	testCases := []struct {
		name        string
		path        string
		contains    []string
		notContains []string
	}{
		{
			name:        "First page",
			path:        "/explore",
			contains:    []string{"Plant Watering Monitor", "Wi-Fi Door Sensor", `data-page="2"`, `data-page="next"`},
			notContains: []string{"BLE Heart Rate Display", `data-page="prev"`},
		},
		{
			name:        "Next from page one",
			path:        "/explore?page=1&go=next",
			contains:    []string{"BLE Heart Rate Display", "Network Ad Blocker", `data-page="prev"`},
			notContains: []string{"Plant Watering Monitor", "Time-lapse Camera"},
		},
		{
			name:        "Category filter",
			path:        "/explore?category=robotics",
			contains:    []string{"Line Following Robot", "Self-Balancing Bot"},
			notContains: []string{"Plant Watering Monitor", `data-page="next"`},
		},
		{
			name:     "Unknown category",
			path:     "/explore?category=Drones",
			contains: []string{"No projects in this category yet."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := get(newRouter(t, mock_productapi.NewMockProductAPI(ctrl)), tc.path, nil)

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			for _, s := range tc.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestExploreHandler_Fragment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := get(newRouter(t, mock_productapi.NewMockProductAPI(ctrl)), "/explore?page=3", map[string]string{web.FragmentHeader: "grid"})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="grid"`)
	assert.Contains(t, body, "Time-lapse Camera")
	assert.NotContains(t, body, "<html")
}

func TestProjectHandler(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		contains       string
	}{
		{name: "Existing project", path: "/projects/10", expectedStatus: http.StatusOK, contains: "Retro Game Console"},
		{name: "Missing image uses placeholder", path: "/projects/7", expectedStatus: http.StatusOK, contains: "placehold.co/400x300/23374D/FFFFFF?text=ESP32"},
		{name: "Unknown project", path: "/projects/999", expectedStatus: http.StatusNotFound, contains: "Project not found"},
		{name: "Invalid id", path: "/projects/abc", expectedStatus: http.StatusNotFound, contains: "Project not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := get(newRouter(t, mock_productapi.NewMockProductAPI(ctrl)), tc.path, nil)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
		})
	}
}

func TestCuratedCard_LinksToSameProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := []models.ProductFromAPI{
		{ID: 6, Title: "Calvin Klein CK One", Category: "fragrances", Description: "A classic unisex fragrance."},
		{ID: 12, Title: "Annibale Colombo Bed", Category: "furniture"},
		{ID: 16, Title: "Apple", Category: "groceries"},
	}
	api := mock_productapi.NewMockProductAPI(ctrl)
	api.EXPECT().GetProducts(gomock.Any(), 0).Return(products, nil).Times(2)
	router := newRouter(t, api)

	home := get(router, "/", nil)
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), `href="/curated/6"`)

	details := get(router, "/curated/6", nil)
	require.Equal(t, http.StatusOK, details.Code)
	body := details.Body.String()
	assert.Contains(t, body, "Calvin Klein CK One")
	assert.Contains(t, body, "fragrances")
	assert.NotContains(t, body, "Wi-Fi Door Sensor")
}

func TestCuratedProjectHandler(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		mockAPIFn      func(m *mock_productapi.MockProductAPI)
		expectedStatus int
		contains       string
	}{
		{
			name: "Unknown product",
			path: "/curated/999",
			mockAPIFn: func(m *mock_productapi.MockProductAPI) {
				m.EXPECT().GetProducts(gomock.Any(), 0).Return([]models.ProductFromAPI{{ID: 6, Title: "Calvin Klein CK One"}}, nil)
			},
			expectedStatus: http.StatusNotFound,
			contains:       "Project not found",
		},
		{
			name:           "Invalid id",
			path:           "/curated/abc",
			mockAPIFn:      func(m *mock_productapi.MockProductAPI) {},
			expectedStatus: http.StatusNotFound,
			contains:       "Project not found",
		},
		{
			name: "Product API down",
			path: "/curated/6",
			mockAPIFn: func(m *mock_productapi.MockProductAPI) {
				m.EXPECT().GetProducts(gomock.Any(), 0).Return(nil, errors.New("upstream down"))
			},
			expectedStatus: http.StatusBadGateway,
			contains:       "Failed to load project",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := mock_productapi.NewMockProductAPI(ctrl)
			tc.mockAPIFn(api)
			w := get(newRouter(t, api), tc.path, nil)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
		})
	}
}

func TestStaticHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := get(newRouter(t, mock_productapi.NewMockProductAPI(ctrl)), "/static/pagination.js", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "[data-pagination] a[data-page]")
	assert.Contains(t, body, ".catch(reportFailure)", "failed form submits are reported")
}
