package integration

import (
	"net/http"
	"testing"
)

func TestShareholderFlow_CreateHoldAndDelete(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create a founder
	rec := app.request("POST", "/api/v1/shareholders",
		`{"name":"Alice Founder","email":"alice@acme.test","type":"founder"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	sh := result["shareholder"].(map[string]interface{})
	shareholderID := sh["id"].(string)
	if sh["type"] != "founder" {
		t.Errorf("expected type founder, got %v", sh["type"])
	}

	// Step 2: Grant common shares
	holdingID := app.addHolding(t, shareholderID, "common", 4000000)

	// Step 3: Shareholder detail includes the holding
	rec = app.request("GET", "/api/v1/shareholders/"+shareholderID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	detail := parseJSON(t, rec)["shareholder"].(map[string]interface{})
	holdings := detail["holdings"].([]interface{})
	if len(holdings) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(holdings))
	}
	if holdings[0].(map[string]interface{})["share_count"].(float64) != 4000000 {
		t.Errorf("expected 4000000 shares, got %v", holdings[0].(map[string]interface{})["share_count"])
	}

	// Step 4: Deleting a shareholder with equity is blocked
	rec = app.request("DELETE", "/api/v1/shareholders/"+shareholderID, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "SHAREHOLDER_IN_USE" {
		t.Errorf("expected SHAREHOLDER_IN_USE, got %v", errObj["code"])
	}

	// Step 5: Remove the holding, then deletion succeeds
	rec = app.request("DELETE", "/api/v1/holdings/"+holdingID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on holding delete, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/shareholders/"+shareholderID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on shareholder delete, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 6: Deleted shareholders are gone
	rec = app.request("GET", "/api/v1/shareholders/"+shareholderID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestShareholderFlow_UpdateHolding(t *testing.T) {
	app := setupApp(t)

	shareholderID := app.createShareholder(t, "Seed Fund I", "investor")
	holdingID := app.addHolding(t, shareholderID, "preferred_a", 1000000)

	rec := app.request("PUT", "/api/v1/holdings/"+holdingID,
		`{"share_count":1500000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	holding := parseJSON(t, rec)["holding"].(map[string]interface{})
	if holding["share_count"].(float64) != 1500000 {
		t.Errorf("expected 1500000 shares, got %v", holding["share_count"])
	}
	if holding["share_class"] != "preferred_a" {
		t.Errorf("expected share class preserved, got %v", holding["share_class"])
	}
}

func TestShareholderFlow_ListPagination(t *testing.T) {
	app := setupApp(t)

	app.createShareholder(t, "Holder A", "founder")
	app.createShareholder(t, "Holder B", "employee")
	app.createShareholder(t, "Holder C", "investor")

	rec := app.request("GET", "/api/v1/shareholders?page=1&page_size=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 3 {
		t.Errorf("expected 3 shareholders, got %v", result["total_items"])
	}
	if result["total_pages"].(float64) != 2 {
		t.Errorf("expected 2 pages, got %v", result["total_pages"])
	}
	if len(result["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 items on page 1, got %d", len(result["data"].([]interface{})))
	}
}

func TestShareholderFlow_RejectsInvalidHolderType(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/shareholders",
		`{"name":"Bad Holder","type":"board_member"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
