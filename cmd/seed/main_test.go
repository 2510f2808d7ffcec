package main

import (
	"os"
	"path/filepath"
	"testing"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/validation"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "novels.yaml")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return p
}

func TestCheckSeed_Embedded(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	err := checkSeed(config.Config{StoreName: "Classic Novels Collection"}, log)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "catalog valid", entry.Message)
	assert.Equal(t, 100, entry.Data["novels"])
	assert.Equal(t, "A Passage to India by E.M. Forster, 1924", entry.Data["oldest"])
}

func TestCheckSeed_FileWithDuplicates(t *testing.T) {
	p := writeSeed(t, `
- title: "Ubik"
  author: "Philip K. Dick"
  year: 1969
- title: "Ubik"
  author: "Someone Else"
  year: 2001
`)
	log, hook := logtest.NewNullLogger()

	require.NoError(t, checkSeed(config.Config{StoreName: "Shelf", SeedFile: p}, log))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Ubik", entry.Data["title"])
}

func TestCheckSeed_InvalidRecord(t *testing.T) {
	p := writeSeed(t, `
- title: "   "
  author: "Nobody"
  year: 1969
`)
	log, _ := logtest.NewNullLogger()

	err := checkSeed(config.Config{StoreName: "Shelf", SeedFile: p}, log)
	assert.ErrorIs(t, err, catalog.ErrInvariantViolation)
	assert.ErrorIs(t, err, validation.ErrValidation)
}

func TestCheckSeed_MissingFile(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	err := checkSeed(config.Config{StoreName: "Shelf", SeedFile: filepath.Join(t.TempDir(), "nope.yaml")}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed")
}

func TestCheckSeed_EmptyDocument(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	err := checkSeed(config.Config{StoreName: "Shelf", SeedFile: writeSeed(t, "[]\n")}, log)
	assert.ErrorIs(t, err, catalog.ErrEmptySeed)
}
