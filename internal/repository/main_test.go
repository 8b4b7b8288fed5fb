//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewops/cafe-service/internal/testutil"
)

// TestMain starts one MongoDB container shared by every integration test in
// this package.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container with a database name unique to
// the calling test.
func setupTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedContainerURI(), testutil.DatabaseNameForTest(t.Name()))
	require.NoError(t, err)
	return db
}
