package databricks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndpointClass(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"/api/2.0/clusters/list", "clusters"},
		{"/api/2.1/clusters/permanent-delete", "clusters"},
		{"/api/2.0/sql/warehouses/abc123", "sql/warehouses"},
		{"/api/2.0/sql/statements/execute", "sql/statements"},
		{"/api/2.1/unity-catalog/catalogs", "unity-catalog/catalogs"},
		{"/api/2.0/preview/scim/v2/ServicePrincipals", "preview/scim"},
		{"/api/1.2/commands/execute", "commands"},
		{"/api/2.0/dbfs/list", "dbfs"},
		{"", "default"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, endpointClass(tc.path), "path %q", tc.path)
	}
}

func TestRateLimitCache(t *testing.T) {
	var cache rateLimitCache

	assert.Equal(t, time.Duration(0), cache.hold("clusters"))

	cache.note("clusters", time.Minute)
	hold := cache.hold("clusters")
	assert.Greater(t, hold, 50*time.Second)
	assert.LessOrEqual(t, hold, time.Minute)

	// Other classes are unaffected.
	assert.Equal(t, time.Duration(0), cache.hold("jobs"))

	// Non-positive hints are ignored.
	cache.note("jobs", 0)
	assert.Equal(t, time.Duration(0), cache.hold("jobs"))
}

func TestRateLimitCacheExpiry(t *testing.T) {
	var cache rateLimitCache
	cache.note("dbfs", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, time.Duration(0), cache.hold("dbfs"))
}
