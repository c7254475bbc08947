package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditEventCategory(t *testing.T) {
	assert.Equal(t, CategoryCompliance, EventFarmRegistered.Category())
	assert.Equal(t, CategoryCompliance, EventRegistrationFeeChanged.Category())
	assert.Equal(t, CategoryCompliance, EventAuthorityContractBound.Category())
	assert.Equal(t, CategoryOperations, EventFarmUpdated.Category())
	assert.Equal(t, CategoryOperations, AuditEvent("something_else").Category())
}
