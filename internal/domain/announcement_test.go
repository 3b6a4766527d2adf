package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Manual notice kinds must stay disjoint from the engine-owned set, or a
// regeneration pass would delete admin-authored notices.
func Test_ManualKinds_DisjointFromDunningKinds(t *testing.T) {
	for _, kind := range []string{AnnouncementDueWarning, AnnouncementSuspension} {
		assert.True(t, ManualKind(kind))
		assert.NotContains(t, DunningKinds(), kind)
	}
	for _, kind := range DunningKinds() {
		assert.False(t, ManualKind(kind))
	}
}
