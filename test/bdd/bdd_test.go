package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spaceempire-go/test/bdd/steps"
	"github.com/andrescamacho/spaceempire-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application", "features/adapters"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	steps.InitializeFleetScenario(sc)
	steps.InitializeStarmapScenario(sc)
	steps.InitializeSessionScenario(sc)
}

func TestMain(m *testing.M) {
	// History scenarios share one in-memory database, truncated before each scenario
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}

	code := m.Run()
	_ = helpers.CloseSharedTestDB()
	os.Exit(code)
}
