package categories

import (
	"context"
	"testing"

	"github.com/emberwick/storefront-api/pkg/db/models"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Category{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(openTestDB(t))
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestFetchActiveCategoryNamesOrdering(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	inactive := false

	for _, in := range []CreateInput{
		{Name: "Woody", SortOrder: 2},
		{Name: "Citrus", SortOrder: 1},
		{Name: "Floral", SortOrder: 1},
		{Name: "Smoky", SortOrder: 0, IsActive: &inactive},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	names, err := repo.FetchActiveCategoryNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Citrus", "Floral", "Woody"}, names)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Smoky", all[0].Name)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "Fresh"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Name: " Fresh "})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict), "got %v", err)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Sweet"})
	require.NoError(t, err)

	order := 7
	updated, err := svc.Update(ctx, created.ID, UpdateInput{SortOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.SortOrder)
	assert.Equal(t, "Sweet", updated.Name)

	blank := "  "
	_, err = svc.Update(ctx, created.ID, UpdateInput{Name: &blank})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, pkgerrors.IsCode(svc.Delete(ctx, created.ID), pkgerrors.CodeNotFound))

	_, err = svc.Update(ctx, uuid.New(), UpdateInput{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), CreateInput{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
