package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtureSource_Embedded(t *testing.T) {
	source, err := LoadFixtureSource("")
	require.NoError(t, err)

	snapshot, err := source.Snapshot(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, snapshot.Demo)
	assert.Len(t, snapshot.Products, 2)
	require.Len(t, snapshot.Loans, 4)
	assert.Equal(t, "agr-demo-001", snapshot.Loans[0]["agreement_id"])
	assert.Equal(t, 5.9, snapshot.Products[0]["interestRate"])
	assert.Empty(t, snapshot.Agreements)
	assert.Empty(t, snapshot.ExternalLoans)
}

func TestLoadFixtureSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	data := []byte(`
products:
  - product_id: p1
    product_type: loan
    interest_rate: "7.25"
loans:
  - agreement_id: l1
    amount: 1500
    source: external
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	source, err := LoadFixtureSource(path)
	require.NoError(t, err)

	snapshot, err := source.Snapshot(context.Background(), "ignored")
	require.NoError(t, err)

	require.Len(t, snapshot.Products, 1)
	assert.Equal(t, "7.25", snapshot.Products[0]["interest_rate"])
	require.Len(t, snapshot.Loans, 1)
	assert.Equal(t, 1500, snapshot.Loans[0]["amount"])
}

func TestLoadFixtureSource_Errors(t *testing.T) {
	_, err := LoadFixtureSource(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = NewFixtureSource([]byte("products: [unterminated"))
	assert.Error(t, err)
}
