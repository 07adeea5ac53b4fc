package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		defaultPerPage int
		maxPerPage     int
		expected       Paging
	}{
		{"defaults", "/items", 20, 100, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit page", "/items?page=3&per_page=10", 20, 100, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/items?limit=5", 20, 100, Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"per_page wins over limit", "/items?per_page=7&limit=50", 20, 100, Paging{Page: 1, PerPage: 7, Offset: 0, Limit: 7}},
		{"clamped to max", "/items?per_page=500", 20, 100, Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"garbage falls back", "/items?page=abc&per_page=xyz", 20, 100, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"negative page normalized", "/items?page=-2", 20, 100, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"unbounded when max is zero", "/items?per_page=500", 20, 0, Paging{Page: 1, PerPage: 500, Offset: 0, Limit: 500}},
	}

	for _, tc := range testCases {
		got := resolveVia(t, tc.target, tc.defaultPerPage, tc.maxPerPage)
		if got != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}
