package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, catalogPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("catalog.path", catalogPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "catalog.toml"))

	tote := domain.Product{ID: 111, Name: "Sample tote"}
	mug := domain.Product{ID: 222, Name: "Enamel mug"}

	require.NoError(t, repo.Save(context.Background(), tote))
	require.NoError(t, repo.Save(context.Background(), mug))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{tote, mug}, products)
}

func TestRepositorySaveReplacesExistingProductInPlace(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "catalog.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 1, Name: "Old"}))
	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 2, Name: "Other"}))
	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 1, Name: "New"}))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{{ID: 1, Name: "New"}, {ID: 2, Name: "Other"}}, products)
}

func TestRepositorySaveRejectsInvalidProduct(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	repo := newTestRepository(t, catalogPath)

	err := repo.Save(context.Background(), domain.Product{ID: -1, Name: "Broken"})
	require.Error(t, err)

	_, statErr := os.Stat(catalogPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "catalog.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 1, Name: "A"}))
	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 2, Name: "B"}))
	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 3, Name: "C"}))

	require.NoError(t, repo.Delete(context.Background(), 2))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}}, products)

	err = repo.Delete(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRepositoryReadsHandWrittenCatalog(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[products]]",
		"id = 111",
		"name = \"Sample tote\"",
		"",
		"[[products]]",
		"id = 111",
		"name = \"Sample tote\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, catalogPath)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{{ID: 111, Name: "Sample tote"}, {ID: 111, Name: "Sample tote"}}, products)
}

func TestRepositoryListRejectsInvalidEntry(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("version = 1\n\n[[products]]\nid = 0\nname = \"Ghost\"\n"), 0o600))

	repo := newTestRepository(t, catalogPath)

	_, err := repo.List(context.Background())
	require.EqualError(t, err, "catalog entry 1: product id must be positive, got 0")
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 1, Name: "Tote"}))

	catalogPath := filepath.Join(homeDir, ".mcart", "catalog.toml")
	assert.Equal(t, catalogPath, repo.Path())
	info, err := os.Stat(catalogPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileIsEmptyCatalog(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "catalog.toml"))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)

	err = repo.Delete(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("products = ["), 0o600))

	repo := newTestRepository(t, catalogPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode catalog file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "catalog.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Product{ID: 1, Name: "Tote"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllProducts(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	repoA := newTestRepository(t, catalogPath)
	repoB := newTestRepository(t, catalogPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, offset int) {
		defer wg.Done()
		<-start
		for i := 1; i <= perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Product{
				ID:   domain.ProductID(offset + i),
				Name: "Product " + strconv.Itoa(offset+i),
			})
		}
	}

	go save(repoA, 0)
	go save(repoB, 1000)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	products, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	repo := newTestRepository(t, catalogPath)

	require.NoError(t, repo.Save(context.Background(), domain.Product{ID: 111, Name: "Sample tote"}))

	data, err := os.ReadFile(catalogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[products]]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("version = 999\n\nproducts = []\n"), 0o600))

	repo := newTestRepository(t, catalogPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported catalog schema version")
}
