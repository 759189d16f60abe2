package integration

import (
	"net/http"
	"testing"
)

func TestCapTableFlow_SummaryAggregation(t *testing.T) {
	app := setupApp(t)

	// Step 1: Configure the company profile
	rec := app.request("PUT", "/api/v1/captable/company",
		`{"name":"Acme Inc","price_per_share":2.0,"option_pool_total":1000000,"option_pool_granted":250000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	company := parseJSON(t, rec)["company"].(map[string]interface{})
	if company["name"] != "Acme Inc" {
		t.Errorf("expected name Acme Inc, got %v", company["name"])
	}

	// Step 2: Build out the cap table
	aliceID := app.createShareholder(t, "Alice", "founder")
	bobID := app.createShareholder(t, "Bob", "founder")
	app.addHolding(t, aliceID, "common", 4000000)
	app.addHolding(t, aliceID, "preferred_a", 2000000)
	app.addHolding(t, bobID, "common", 4000000)

	// Step 3: Outstanding SAFE counts into the fully diluted total as-converted
	investorID := app.createShareholder(t, "Angel", "investor")
	rec = app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":300000,"type":"post_money"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 4: Summary aggregates holdings per shareholder, largest first
	rec = app.request("GET", "/api/v1/captable/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["total_outstanding_shares"].(float64) != 10000000 {
		t.Errorf("expected 10000000 outstanding, got %v", summary["total_outstanding_shares"])
	}
	// 10M held + 1M pool + 300000/2.00 = 150000 as-converted SAFE shares
	if summary["total_fully_diluted_shares"].(float64) != 11150000 {
		t.Errorf("expected 11150000 fully diluted, got %v", summary["total_fully_diluted_shares"])
	}
	if summary["total_option_pool_available"].(float64) != 750000 {
		t.Errorf("expected 750000 pool available, got %v", summary["total_option_pool_available"])
	}

	holders := summary["shareholders"].([]interface{})
	if len(holders) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(holders))
	}
	first := holders[0].(map[string]interface{})
	if first["shareholder_name"] != "Alice" || first["shares"].(float64) != 6000000 {
		t.Errorf("expected Alice with 6000000 first, got %v with %v", first["shareholder_name"], first["shares"])
	}
}

func TestCapTableFlow_UpdateCompanyIsIdempotentUpsert(t *testing.T) {
	app := setupApp(t)

	rec := app.request("PUT", "/api/v1/captable/company",
		`{"name":"Acme Inc","price_per_share":1.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on first upsert, got %d: %s", rec.Code, rec.Body.String())
	}
	firstID := parseJSON(t, rec)["company"].(map[string]interface{})["id"].(string)

	rec = app.request("PUT", "/api/v1/captable/company",
		`{"name":"Acme Incorporated","price_per_share":2.5,"option_pool_total":500000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on second upsert, got %d: %s", rec.Code, rec.Body.String())
	}
	company := parseJSON(t, rec)["company"].(map[string]interface{})
	if company["id"].(string) != firstID {
		t.Errorf("expected second update to reuse the company row")
	}
	if company["price_per_share"] != "2.5" {
		t.Errorf("expected price 2.5, got %v", company["price_per_share"])
	}
}

func TestCapTableFlow_CompanyNotConfigured(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/captable/company", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "COMPANY_NOT_FOUND" {
		t.Errorf("expected COMPANY_NOT_FOUND, got %v", errObj["code"])
	}
}
