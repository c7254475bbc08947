package e2e

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/fridayblessings411-cell/AgroTour/e2e/steps/farms"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.Reset()
		return c, nil
	})

	ctx.Step(`^I act as "([^"]*)"$`, func(principal string) { tc.ActAs(principal) })
	ctx.Step(`^the response status should be (\d+)$`, func(want int) error {
		if got := tc.StatusCode(); got != want {
			return fmt.Errorf("expected status %d, got %d", want, got)
		}
		return nil
	})
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, func(field, want string) error {
		v, err := tc.GetResponseField(field)
		if err != nil {
			return err
		}
		if got := fmt.Sprint(v); got != want {
			return fmt.Errorf("expected %s=%q, got %q", field, want, got)
		}
		return nil
	})

	farms.RegisterSteps(ctx, tc)
}
