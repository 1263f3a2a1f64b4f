package observability

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_DevelopmentEnablesDebug(t *testing.T) {
	InitLogger("treatment-planner", "development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitLogger_ProductionStaysAtInfo(t *testing.T) {
	InitLogger("treatment-planner", "production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGetLogger_ReturnsSharedLogger(t *testing.T) {
	require.NotNil(t, GetLogger())
}
