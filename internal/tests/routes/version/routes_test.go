package version_test

import (
	"net/http"
	"runtime"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestVersionEndpoint(t *testing.T) {
	app := tests.NewApp(t, "")

	resp := tests.Request(t, app, http.MethodGet, "/version", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version models.VersionResponse
	tests.Decode(t, resp, &version)
	require.Equal(t, runtime.Version(), version.GoVersion)
	require.NotEmpty(t, version.Commit)
}
