package e2e

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the feature files against a live server. The server must
// verify ST1FARMER and seed its ledger balance, for example with
// AGROTOUR_AUTHORITY_VERIFIED=ST1FARMER and
// AGROTOUR_LEDGER_BALANCES=ST1FARMER=1000000.
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("AGROTOUR_E2E_URL")
	if baseURL == "" {
		t.Skip("AGROTOUR_E2E_URL not set")
	}
	tc := NewTestContext(baseURL, os.Getenv("AGROTOUR_E2E_ADMIN_TOKEN"))

	suite := godog.TestSuite{
		Name: "agrotour",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			RegisterSteps(ctx, tc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("e2e scenarios failed")
	}
}
