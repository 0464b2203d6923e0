package integration

import (
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := setupApp(t)
		app.createUser(t, "alice", "password123")

		rec := app.request("POST", "/api/auth/login", `{"username":"alice","password":"password123"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" {
			t.Error("expected a token in the response")
		}
		user := result["user"].(map[string]interface{})
		if user["username"] != "alice" {
			t.Errorf("expected username alice, got %v", user["username"])
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		app := setupApp(t)
		app.createUser(t, "bob", "password123")

		rec := app.request("POST", "/api/auth/login", `{"username":"bob","password":"nope"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		errObj := result["error"].(map[string]interface{})
		if errObj["code"] != "INVALID_CREDENTIALS" {
			t.Errorf("expected INVALID_CREDENTIALS, got %v", errObj["code"])
		}
	})

	t.Run("unknown_user_same_error", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/auth/login", `{"username":"ghost","password":"password123"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestIdentityIsOptional(t *testing.T) {
	app := setupApp(t)

	// No token: reads and writes still work, attribution is just absent.
	rec := app.request("POST", "/api/studios", `{"name":"Anonymous Studio"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/activity-logs", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(data))
	}
	entry := data[0].(map[string]interface{})
	if entry["username"] != "Unknown" {
		t.Errorf("expected Unknown actor, got %v", entry["username"])
	}
}

func TestActivityLogAttribution(t *testing.T) {
	app := setupApp(t)
	_, token := app.createUser(t, "carol", "password123")

	rec := app.request("POST", "/api/studios", `{"name":"Carol Studio"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/activity-logs", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(data))
	}
	entry := data[0].(map[string]interface{})
	if entry["username"] != "carol" {
		t.Errorf("expected carol as actor, got %v", entry["username"])
	}
	if entry["action"] != "create" || entry["entity_type"] != "studio" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
