package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "form", ViewForm.String())
	assert.Equal(t, "report", ViewReport.String())
	assert.Equal(t, "unknown", ViewType(99).String())
}
