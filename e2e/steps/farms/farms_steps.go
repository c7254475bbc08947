package farms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	POST(path string, body any) error
	PUT(path string, body any, headers map[string]string) error
	AdminHeaders() map[string]string
	StatusCode() int
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers farm registry step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &farmSteps{
		tc: tc,
		// Servers keep state between runs, so names are made unique per run.
		suffix: strconv.FormatInt(time.Now().UnixNano(), 36),
		ids:    map[string]string{},
	}

	ctx.Step(`^the authority contract "([^"]*)" is bound$`, steps.bindAuthorityContract)
	ctx.Step(`^I register a farm named "([^"]*)"$`, steps.registerFarm)
	ctx.Step(`^I register a farm named "([^"]*)" with sustainability score (\d+)$`, steps.registerFarmWithScore)
	ctx.Step(`^I update farm "([^"]*)" to name "([^"]*)" in "([^"]*)" of size (\d+)$`, steps.updateFarm)
	ctx.Step(`^I fetch farm "([^"]*)"$`, steps.fetchFarm)
	ctx.Step(`^the farm name "([^"]*)" should (exist|not exist)$`, steps.farmNameShouldExist)
	ctx.Step(`^the registry error code should be (\d+)$`, steps.errorCodeShouldBe)
}

type farmSteps struct {
	tc     TestContext
	suffix string
	ids    map[string]string
}

func (s *farmSteps) name(label string) string {
	return label + " " + s.suffix
}

func (s *farmSteps) registration(label string, score int) map[string]any {
	return map[string]any{
		"name":                 s.name(label),
		"location":             "Green Valley",
		"size":                 50,
		"crop_types":           "coffee",
		"certifications":       "",
		"farm_type":            "organic",
		"capacity":             500,
		"climate":              "tropical",
		"soil":                 "volcanic",
		"currency":             "STX",
		"sustainability_score": score,
		"max_investors":        20,
	}
}

func (s *farmSteps) bindAuthorityContract(ctx context.Context, contract string) error {
	if err := s.tc.PUT("/admin/authority-contract", map[string]string{"contract": contract}, s.tc.AdminHeaders()); err != nil {
		return err
	}
	switch s.tc.StatusCode() {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		// Already bound by an earlier run.
		return nil
	default:
		return fmt.Errorf("binding authority contract returned %d", s.tc.StatusCode())
	}
}

func (s *farmSteps) registerFarm(ctx context.Context, label string) error {
	return s.registerFarmWithScore(ctx, label, 80)
}

func (s *farmSteps) registerFarmWithScore(ctx context.Context, label string, score int) error {
	if err := s.tc.POST("/farms", s.registration(label, score)); err != nil {
		return err
	}
	if s.tc.StatusCode() != http.StatusCreated {
		return nil
	}
	id, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	s.ids[label] = fmt.Sprint(id)
	return nil
}

func (s *farmSteps) updateFarm(ctx context.Context, label, newLabel, location string, size int) error {
	id, ok := s.ids[label]
	if !ok {
		return fmt.Errorf("farm %q was not registered in this scenario", label)
	}
	body := map[string]any{"name": s.name(newLabel), "location": location, "size": size}
	return s.tc.PUT("/farms/"+id, body, nil)
}

func (s *farmSteps) fetchFarm(ctx context.Context, label string) error {
	id, ok := s.ids[label]
	if !ok {
		return fmt.Errorf("farm %q was not registered in this scenario", label)
	}
	return s.tc.GET("/farms/"+id, nil)
}

func (s *farmSteps) farmNameShouldExist(ctx context.Context, label, mode string) error {
	if err := s.tc.GET("/farms/exists?name="+url.QueryEscape(s.name(label)), nil); err != nil {
		return err
	}
	v, err := s.tc.GetResponseField("exists")
	if err != nil {
		return err
	}
	want := mode == "exist"
	if got, _ := v.(bool); got != want {
		return fmt.Errorf("expected exists=%t for %q, got %v", want, label, v)
	}
	return nil
}

func (s *farmSteps) errorCodeShouldBe(ctx context.Context, code int) error {
	v, err := s.tc.GetResponseField("code")
	if err != nil {
		return err
	}
	if got, _ := v.(float64); int(got) != code {
		return fmt.Errorf("expected registry error code %d, got %v", code, v)
	}
	return nil
}
