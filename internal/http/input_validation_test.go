package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestPartyCreateValidation(t *testing.T) {
	app, _ := newTestApp(t)
	sid := login(t, app, "admin", "admin123")

	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","route_id":"rt-limbayat"}`},
		{"name too long", `{"name":"` + strings.Repeat("A", 61) + `","route_id":"rt-limbayat"}`},
		{"missing route", `{"name":"NEW PARTY"}`},
		{"bad contact", `{"name":"NEW PARTY","route_id":"rt-limbayat","contact_number":"call me"}`},
		{"bad status", `{"name":"NEW PARTY","route_id":"rt-limbayat","status":"Archived"}`},
	}
	for _, tc := range cases {
		resp, err := app.Test(authedReq("POST", "/api/parties/", tc.body, sid))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", tc.name, resp.StatusCode)
		}
	}

	// The happy path still works, defaulting status to Enable.
	resp, err := app.Test(authedReq("POST", "/api/parties/",
		`{"name":"NEW PARTY","address":"12 RING ROAD","route_id":"rt-limbayat","contact_number":"+91 9898-12345"}`, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid create failed: %d", resp.StatusCode)
	}
	var p struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, resp, &p)
	if p.ID == "" || p.Status != "Enable" {
		t.Fatalf("unexpected created party: %+v", p)
	}
}

func TestPartySearchEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	sid := login(t, app, "admin", "admin123")

	resp, err := app.Test(authedReq("GET", "/api/parties/?q=lace&route=rt-limbayat", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Count int `json:"count"`
	}
	decodeBody(t, resp, &out)
	if out.Count != 3 {
		t.Fatalf("want 3 LIMBAYAT lace parties, got %d", out.Count)
	}

	// No match is an empty list, not an error.
	respNone, err := app.Test(authedReq("GET", "/api/parties/?q=nosuchparty", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	if respNone.StatusCode != http.StatusOK {
		t.Fatalf("empty search should be 200, got %d", respNone.StatusCode)
	}
	decodeBody(t, respNone, &out)
	if out.Count != 0 {
		t.Fatalf("want 0 matches, got %d", out.Count)
	}
}

func TestInventoryAdjustValidation(t *testing.T) {
	app, _ := newTestApp(t)
	sid := login(t, app, "admin", "admin123")

	bad := []string{
		`{"color_id":"cl-red","transaction_type":"MOVE","quantity":2}`,
		`{"color_id":"cl-red","transaction_type":"IN","quantity":0}`,
		`{"color_id":"cl-red","transaction_type":"OUT","quantity":-3}`,
	}
	for _, body := range bad {
		resp, err := app.Test(authedReq("POST", "/api/inventory/transactions", body, sid))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: want 400, got %d", body, resp.StatusCode)
		}
	}

	resp, err := app.Test(authedReq("POST", "/api/inventory/transactions",
		`{"color_id":"cl-red","transaction_type":"IN","quantity":5,"note":"restock"}`, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid adjustment failed: %d", resp.StatusCode)
	}
}
