package jobs

import (
	"testing"

	"boutic/models"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	calls []string
}

func (f *fakeSweeper) CleanExpiredFlashSales() (bool, error) {
	f.calls = append(f.calls, "clean")
	return false, nil
}

func (f *fakeSweeper) GenerateBanniereFlashSale() []models.BannerProduct {
	f.calls = append(f.calls, "generate")
	return nil
}

func TestSweepRunsCleanupBeforeRegeneration(t *testing.T) {
	fake := &fakeSweeper{}
	SetFlashSaleSweeper(fake)
	defer SetFlashSaleSweeper(nil)

	RunFlashSaleSweep()

	// La régénération suit toujours la purge, même sans suppression.
	assert.Equal(t, []string{"clean", "generate"}, fake.calls)
}

func TestSweepWithoutSweeperDoesNothing(t *testing.T) {
	SetFlashSaleSweeper(nil)
	assert.NotPanics(t, RunFlashSaleSweep)
}
