package obs_test

import (
	"testing"

	"lockers/internal/pkg/obs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_WithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := obs.InitTracer(t.Context(), "lockers", "test", "")
	require.NoError(t, err)

	_, span := obs.Tracer("test").Start(t.Context(), "span")
	span.End()

	assert.NoError(t, shutdown(t.Context()))
}
