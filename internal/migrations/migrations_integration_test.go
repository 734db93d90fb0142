package migrations

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/usecase/runner"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newRunner(t *testing.T, registry *migration.Registry) (*database.TestDBManager, *runner.Runner) {
	t.Helper()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	r := runner.NewRunner(registry, tdb.Manager.CreateUnitOfWork(), tdb.Logger, tdb.TimeProvider)
	return tdb, r
}

func docbaseRegistry(t *testing.T) *migration.Registry {
	t.Helper()
	registry, err := Registry()
	require.NoError(t, err)
	return registry
}

func expectedTables() []string {
	return []string{
		TableDialog2Kb,
		TableDialogInfo,
		TableDoc2Doc,
		TableDocInfo,
		TableKb2Doc,
		TableKbInfo,
		entity.MigrationRecordTable,
		TableTag2Doc,
		TableTagInfo,
		TableUserInfo,
	}
}

func TestMigrateUpFromEmpty(t *testing.T) {
	tdb, r := newRunner(t, docbaseRegistry(t))
	ctx := context.Background()

	report, err := r.MigrateUp(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{CreateSchemaMigrationsName, CreateTableName}, report.Applied)
	assert.Empty(t, report.Skipped)

	assert.Equal(t, expectedTables(), tdb.Tables(t))

	db := tdb.DB()

	var emails []string
	require.NoError(t, db.Table(TableUserInfo).Pluck("email", &emails).Error)
	assert.Equal(t, []string{RootEmail}, emails)

	var user struct {
		Nickname    string
		Password    string
		ColorScheme string
		ListStyle   string
		Language    string
	}
	require.NoError(t, db.Table(TableUserInfo).Take(&user).Error)
	assert.Equal(t, "root", user.Nickname)
	assert.Equal(t, "123456", user.Password)
	assert.Equal(t, "dark", user.ColorScheme)
	assert.Equal(t, "list", user.ListStyle)
	assert.Equal(t, "chinese", user.Language)

	var folders []struct {
		Uid      int64
		DocName  string
		Location string
		Size     int64
	}
	require.NoError(t, db.Table(TableDocInfo).Where("type = ?", "folder").Find(&folders).Error)
	require.Len(t, folders, 1)
	assert.Equal(t, int64(1), folders[0].Uid)
	assert.Equal(t, "/", folders[0].DocName)
	assert.Equal(t, "", folders[0].Location)
	assert.Equal(t, int64(0), folders[0].Size)

	var tags []struct {
		TagName string
		Color   int
		Icon    int
	}
	require.NoError(t, db.Table(TableTagInfo).Order("tid").Find(&tags).Error)
	require.Len(t, tags, 4)
	names := make([]string, len(tags))
	colors := make([]int, len(tags))
	for i, tag := range tags {
		names[i] = tag.TagName
		colors[i] = tag.Color
	}
	assert.Equal(t, []string{"视频", "图片", "音乐", "文档"}, names)
	assert.Equal(t, []int{1, 2, 3, 3}, colors)
}

func TestMigrateUpTwiceIsNoop(t *testing.T) {
	tdb, r := newRunner(t, docbaseRegistry(t))
	ctx := context.Background()

	_, err := r.MigrateUp(ctx, "")
	require.NoError(t, err)

	report, err := r.MigrateUp(ctx, "")
	require.NoError(t, err)
	assert.False(t, report.Changed())
	assert.Equal(t, int64(1), tdb.CountRows(t, TableUserInfo), "seeds are not inserted twice")
	assert.Equal(t, int64(4), tdb.CountRows(t, TableTagInfo))
}

func TestUpDownUpMatchesSingleUp(t *testing.T) {
	ctx := context.Background()

	once, r1 := newRunner(t, docbaseRegistry(t))
	_, err := r1.MigrateUp(ctx, "")
	require.NoError(t, err)

	cycled, r2 := newRunner(t, docbaseRegistry(t))
	_, err = r2.MigrateUp(ctx, "")
	require.NoError(t, err)
	_, err = r2.MigrateDown(ctx, "")
	require.NoError(t, err)
	_, err = r2.MigrateUp(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, once.Structure(t), cycled.Structure(t))
}

func TestMigrateDownRemovesEverything(t *testing.T) {
	tdb, r := newRunner(t, docbaseRegistry(t))
	ctx := context.Background()

	_, err := r.MigrateUp(ctx, "")
	require.NoError(t, err)

	report, err := r.MigrateDown(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{CreateTableName, CreateSchemaMigrationsName}, report.Applied)
	assert.Empty(t, tdb.Tables(t))

	statuses, err := r.StatusList(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.Equal(t, entity.StatePending, s.State, s.Name)
	}
}

func TestStatusAfterPartialRollback(t *testing.T) {
	tdb, r := newRunner(t, docbaseRegistry(t))
	ctx := context.Background()

	_, err := r.MigrateUp(ctx, "")
	require.NoError(t, err)

	report, err := r.MigrateDown(ctx, CreateSchemaMigrationsName)
	require.NoError(t, err)
	assert.Equal(t, []string{CreateTableName}, report.Applied)
	assert.Equal(t, []string{entity.MigrationRecordTable}, tdb.Tables(t))
	assert.Equal(t, int64(1), tdb.CountRows(t, entity.MigrationRecordTable))

	statuses, err := r.StatusList(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, CreateSchemaMigrationsName, statuses[0].Name)
	assert.True(t, statuses[0].Applied())
	assert.NotNil(t, statuses[0].AppliedAt)
	assert.Equal(t, CreateTableName, statuses[1].Name)
	assert.False(t, statuses[1].Applied())
	assert.Nil(t, statuses[1].AppliedAt)
}

func TestFailedUnitLeavesNoPartialDDL(t *testing.T) {
	failing := migration.Unit{
		Name: "m20230101_000000_failing",
		Up: func() ([]schema.Operation, error) {
			var p schema.Plan
			p.Add(schema.CreateTable("first").Column(schema.BigInteger("id").PrimaryKey()).Build())
			p.Add(schema.CreateTable("second").Column(schema.BigInteger("id").PrimaryKey()).Build())
			p.Add(schema.Insert("missing").Columns("id").Values(1).Build())
			p.Add(schema.CreateTable("fourth").Column(schema.BigInteger("id").PrimaryKey()).Build())
			p.Add(schema.CreateTable("fifth").Column(schema.BigInteger("id").PrimaryKey()).Build())
			return p.Operations()
		},
		Down: func() ([]schema.Operation, error) {
			var p schema.Plan
			for _, table := range []string{"first", "second", "fourth", "fifth"} {
				p.Add(schema.DropTable(table))
			}
			return p.Operations()
		},
	}
	registry, err := migration.NewRegistry(CreateSchemaMigrations(), failing)
	require.NoError(t, err)

	tdb, r := newRunner(t, registry)
	ctx := context.Background()

	report, err := r.MigrateUp(ctx, "")
	require.Error(t, err)
	assert.Equal(t, []string{CreateSchemaMigrationsName}, report.Applied)

	var partial *domainerr.PartialApplicationError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, "m20230101_000000_failing", partial.Unit)
	assert.Equal(t, 3, partial.Step)
	assert.True(t, domainerr.IsExecutionError(err))
	assert.Equal(t, domainerr.ExitCodeExecution, domainerr.ExitCode(err))

	assert.Equal(t, []string{entity.MigrationRecordTable}, tdb.Tables(t))

	statuses, err := r.StatusList(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Applied())
	assert.False(t, statuses[1].Applied())
}

func TestUnknownTarget(t *testing.T) {
	_, r := newRunner(t, docbaseRegistry(t))

	_, err := r.MigrateUp(context.Background(), "m20990101_000000_missing")
	assert.ErrorIs(t, err, domainerr.ErrUnknownMigration)
}

func TestConcurrentRunnersApplyEachUnitOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	registry := docbaseRegistry(t)

	managers := make([]*database.TestDBManager, 2)
	runners := make([]*runner.Runner, 2)
	for i := range runners {
		managers[i] = database.NewTestDBManagerAt(t, logger.NewNoopLogger(), path)
		runners[i] = runner.NewRunner(registry, managers[i].Manager.CreateUnitOfWork(), managers[i].Logger, managers[i].TimeProvider)
	}

	reports := make([]*entity.MigrationReport, len(runners))
	var g errgroup.Group
	for i, r := range runners {
		g.Go(func() error {
			report, err := r.MigrateUp(context.Background(), "")
			reports[i] = report
			return err
		})
	}
	require.NoError(t, g.Wait())

	appliedBy := make(map[string]int)
	for _, report := range reports {
		for _, name := range report.Applied {
			appliedBy[name]++
		}
	}
	assert.Equal(t, map[string]int{CreateSchemaMigrationsName: 1, CreateTableName: 1}, appliedBy)

	tdb := managers[0]
	assert.Equal(t, expectedTables(), tdb.Tables(t))
	assert.Equal(t, int64(2), tdb.CountRows(t, entity.MigrationRecordTable))
	assert.Equal(t, int64(1), tdb.CountRows(t, TableUserInfo))
	assert.Equal(t, int64(4), tdb.CountRows(t, TableTagInfo))
	assert.Equal(t, int64(1), tdb.CountRows(t, TableDocInfo))
}

func TestRevertKeepsSeedRows(t *testing.T) {
	addBio := migration.Unit{
		Name: "m20230101_000000_add_user_bio",
		Up: func() ([]schema.Operation, error) {
			var p schema.Plan
			p.Add(schema.AddColumn(TableUserInfo, schema.String("bio").Default("")))
			return p.Operations()
		},
		Down: func() ([]schema.Operation, error) {
			var p schema.Plan
			p.Add(schema.DropColumn(TableUserInfo, "bio"))
			return p.Operations()
		},
	}
	registry, err := migration.NewRegistry(CreateSchemaMigrations(), CreateTable(), addBio)
	require.NoError(t, err)

	tdb, r := newRunner(t, registry)
	ctx := context.Background()

	_, err = r.MigrateUp(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, tdb.Structure(t)[TableUserInfo], "bio")

	seeded := map[string]int64{}
	for _, table := range []string{TableUserInfo, TableTagInfo, TableDocInfo} {
		seeded[table] = tdb.CountRows(t, table)
	}

	report, err := r.MigrateDown(ctx, CreateTableName)
	require.NoError(t, err)
	assert.Equal(t, []string{addBio.Name}, report.Applied)
	assert.NotContains(t, tdb.Structure(t)[TableUserInfo], "bio")

	for table, count := range seeded {
		assert.Equal(t, count, tdb.CountRows(t, table), "revert must keep the rows of %s", table)
	}
}
