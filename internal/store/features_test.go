package store

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/cucumber/godog"

	"github.com/Makepad-fr/packing/internal/model"
)

type listContext struct {
	ids     *model.Counter
	initial Collection
	current Collection
}

func (lc *listContext) reset() {
	lc.ids = &model.Counter{}
	lc.initial = Collection{}
	lc.current = Collection{}
}

// idOf resolves a name to an id. Unknown names map to an id no item has.
func (lc *listContext) idOf(name string) string {
	for _, it := range lc.current.Items() {
		if it.Name == name {
			return it.ID
		}
	}
	return "unknown:" + name
}

func (lc *listContext) anEmptyPackingList() error {
	lc.initial = Collection{}
	lc.current = lc.initial
	return nil
}

func (lc *listContext) theDemoPackingList() error {
	lc.initial = Seed(lc.ids)
	lc.current = lc.initial
	return nil
}

func (lc *listContext) iAddWithQuantity(name string, quantity int) error {
	lc.current = Add(lc.current, lc.ids, name, quantity)
	return nil
}

func (lc *listContext) iToggle(name string) error {
	lc.current = Toggle(lc.current, lc.idOf(name))
	return nil
}

func (lc *listContext) iRemove(name string) error {
	lc.current = Remove(lc.current, lc.idOf(name))
	return nil
}

func (lc *listContext) iClearTheList() error {
	lc.current = Clear(lc.current)
	return nil
}

func (lc *listContext) theListHasItemsAndPacked(total, packed int) error {
	if got := Total(lc.current); got != total {
		return fmt.Errorf("expected %d items, got %d", total, got)
	}
	if got := PackedCount(lc.current); got != packed {
		return fmt.Errorf("expected %d packed, got %d", packed, got)
	}
	return nil
}

func (lc *listContext) theListIsPercentPacked(pct float64) error {
	if got := PercentPacked(lc.current); got != pct {
		return fmt.Errorf("expected %.1f%%, got %.1f%%", pct, got)
	}
	return nil
}

func (lc *listContext) hasQuantity(name string, quantity int) error {
	it, ok := lc.current.Get(lc.idOf(name))
	if !ok {
		return fmt.Errorf("no item named %q", name)
	}
	if it.Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, it.Quantity)
	}
	return nil
}

func (lc *listContext) theListIsUnchanged() error {
	if !reflect.DeepEqual(lc.initial, lc.current) {
		return fmt.Errorf("list changed: %v -> %v", lc.initial.Items(), lc.current.Items())
	}
	return nil
}

func initializeScenario(ctx *godog.ScenarioContext) {
	lc := &listContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		lc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty packing list$`, lc.anEmptyPackingList)
	ctx.Step(`^the demo packing list$`, lc.theDemoPackingList)

	ctx.Step(`^I add "([^"]*)" with quantity (-?\d+)$`, lc.iAddWithQuantity)
	ctx.Step(`^I toggle "([^"]*)"$`, lc.iToggle)
	ctx.Step(`^I remove "([^"]*)"$`, lc.iRemove)
	ctx.Step(`^I clear the list$`, lc.iClearTheList)

	ctx.Step(`^the list has (\d+) items and (\d+) packed$`, lc.theListHasItemsAndPacked)
	ctx.Step(`^the list is (\d+(?:\.\d+)?) percent packed$`, lc.theListIsPercentPacked)
	ctx.Step(`^"([^"]*)" has quantity (\d+)$`, lc.hasQuantity)
	ctx.Step(`^the list is unchanged$`, lc.theListIsUnchanged)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "packing",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
