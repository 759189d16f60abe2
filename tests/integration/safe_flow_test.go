package integration

import (
	"net/http"
	"testing"
)

// seedSafeCapTable configures a company with a 2M option pool at $1.00 and an
// 8M-share founder, giving a 10M fully diluted base for conversion pricing.
func seedSafeCapTable(t *testing.T, app *testApp) {
	t.Helper()
	rec := app.request("PUT", "/api/v1/captable/company",
		`{"name":"Acme Inc","price_per_share":1.0,"option_pool_total":2000000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("company setup failed: %d %s", rec.Code, rec.Body.String())
	}
	founderID := app.createShareholder(t, "Founder", "founder")
	app.addHolding(t, founderID, "common", 8000000)
}

func TestSafeFlow_CapWinsConversion(t *testing.T) {
	app := setupApp(t)
	seedSafeCapTable(t, app)

	investorID := app.createShareholder(t, "Angel", "investor")
	rec := app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":100000,"valuation_cap":5000000,"discount_rate":0.2,"type":"post_money","has_pro_rata_rights":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	note := parseJSON(t, rec)["safe_note"].(map[string]interface{})
	if note["status"] != "outstanding" {
		t.Errorf("expected status outstanding, got %v", note["status"])
	}

	// Cap price 5M/10M = $0.50 beats the $0.80 discount price and $1.00 round price.
	rec = app.request("POST", "/api/v1/safes/conversions",
		`{"round_price_per_share":1.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	conversions := summary["conversions"].([]interface{})
	if len(conversions) != 1 {
		t.Fatalf("expected 1 conversion, got %d", len(conversions))
	}
	conv := conversions[0].(map[string]interface{})
	if conv["method"] != "cap" {
		t.Errorf("expected cap method, got %v", conv["method"])
	}
	if conv["shares"].(float64) != 200000 {
		t.Errorf("expected 200000 shares, got %v", conv["shares"])
	}
	if conv["effective_price"] != "0.5" {
		t.Errorf("expected effective price 0.5, got %v", conv["effective_price"])
	}
	if summary["total_shares"].(float64) != 200000 {
		t.Errorf("expected total 200000 shares, got %v", summary["total_shares"])
	}
}

func TestSafeFlow_DiscountWinsExactTieWithCap(t *testing.T) {
	app := setupApp(t)
	seedSafeCapTable(t, app)

	investorID := app.createShareholder(t, "Angel", "investor")
	// Cap price 8M/10M = $0.80 equals the 20% discount price at a $1.00 round.
	rec := app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":80000,"valuation_cap":8000000,"discount_rate":0.2,"type":"post_money"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/safes/conversions",
		`{"round_price_per_share":1.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	conv := parseJSON(t, rec)["conversions"].([]interface{})[0].(map[string]interface{})
	if conv["method"] != "discount" {
		t.Errorf("expected discount to win the tie, got %v", conv["method"])
	}
	if conv["shares"].(float64) != 100000 {
		t.Errorf("expected 100000 shares, got %v", conv["shares"])
	}
}

func TestSafeFlow_CancelRemovesFromConversions(t *testing.T) {
	app := setupApp(t)
	seedSafeCapTable(t, app)

	investorID := app.createShareholder(t, "Angel", "investor")
	rec := app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":50000,"type":"uncapped"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	noteID := parseJSON(t, rec)["safe_note"].(map[string]interface{})["id"].(string)

	// Cancel the note
	rec = app.request("POST", "/api/v1/safes/"+noteID+"/cancel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	note := parseJSON(t, rec)["safe_note"].(map[string]interface{})
	if note["status"] != "cancelled" {
		t.Errorf("expected cancelled, got %v", note["status"])
	}

	// Cancelling twice conflicts
	rec = app.request("POST", "/api/v1/safes/"+noteID+"/cancel", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double cancel, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "SAFE_NOT_OUTSTANDING" {
		t.Errorf("expected SAFE_NOT_OUTSTANDING, got %v", errObj["code"])
	}

	// With no outstanding notes left, conversion resolution has nothing to work on
	rec = app.request("POST", "/api/v1/safes/conversions",
		`{"round_price_per_share":1.0}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj = parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "EMPTY_INPUT_SET" {
		t.Errorf("expected EMPTY_INPUT_SET, got %v", errObj["code"])
	}
}

func TestSafeFlow_StatusFilter(t *testing.T) {
	app := setupApp(t)
	seedSafeCapTable(t, app)

	investorID := app.createShareholder(t, "Angel", "investor")
	rec := app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":50000,"type":"uncapped"}`)
	noteID := parseJSON(t, rec)["safe_note"].(map[string]interface{})["id"].(string)
	app.request("POST", "/api/v1/safes",
		`{"shareholder_id":"`+investorID+`","investment_amount":75000,"type":"uncapped"}`)
	app.request("POST", "/api/v1/safes/"+noteID+"/cancel", "")

	rec = app.request("GET", "/api/v1/safes?status=outstanding", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 outstanding note, got %v", result["total_items"])
	}

	rec = app.request("GET", "/api/v1/safes?status=cancelled", "")
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 cancelled note, got %v", result["total_items"])
	}
}
