package handlers_test

import (
	"net/http"
	"testing"
)

func TestSubAdminUpdateIsAllOrNothing(t *testing.T) {
	app, db := newTestApp(t)
	adminSID := login(t, app, "admin", "admin123")

	seedSubAdmin(t, app, adminSID, `{
		"username":"clerk","name":"Order Clerk","password":"clerk123",
		"permissions":{"orders":true}
	}`)
	var id string
	if err := db.Get(&id, `SELECT id FROM sub_admins WHERE username='clerk'`); err != nil {
		t.Fatal(err)
	}

	// Valid name, bad password: nothing may change, not even the name.
	resp, err := app.Test(authedReq("PUT", "/api/sub-admins/"+id,
		`{"name":"Renamed Clerk","password":"abc"}`, adminSID))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("short password: expected 400, got %d", resp.StatusCode)
	}

	var name string
	if err := db.Get(&name, `SELECT name FROM sub_admins WHERE id=?`, id); err != nil {
		t.Fatal(err)
	}
	if name != "Order Clerk" {
		t.Fatalf("rejected update changed the name to %q", name)
	}
	// The old password still opens the door.
	login(t, app, "clerk", "clerk123")

	// A fully valid update applies both fields.
	resp, err = app.Test(authedReq("PUT", "/api/sub-admins/"+id,
		`{"name":"Renamed Clerk","password":"clerk456"}`, adminSID))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid update failed: %d", resp.StatusCode)
	}
	if err := db.Get(&name, `SELECT name FROM sub_admins WHERE id=?`, id); err != nil {
		t.Fatal(err)
	}
	if name != "Renamed Clerk" {
		t.Fatalf("name not updated, got %q", name)
	}
	login(t, app, "clerk", "clerk456")
}
