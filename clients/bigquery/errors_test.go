package bigquery

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsNotFoundErr(t *testing.T) {
	assert.False(t, isNotFoundErr(nil))
	assert.False(t, isNotFoundErr(fmt.Errorf("not found")))
	assert.False(t, isNotFoundErr(&googleapi.Error{Code: http.StatusForbidden}))
	assert.True(t, isNotFoundErr(&googleapi.Error{Code: http.StatusNotFound}))
	assert.True(t, isNotFoundErr(fmt.Errorf("failed to get dataset: %w", &googleapi.Error{Code: http.StatusNotFound})))
}
