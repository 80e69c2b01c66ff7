package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainAppointment "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	domainArtist "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	domainClient "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

// sqlRecorder collects the statements gorm renders, with values inlined.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any)             {}
func (r *sqlRecorder) Warn(context.Context, string, ...any)             {}
func (r *sqlRecorder) Error(context.Context, string, ...any)            {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmt = append(r.stmt, sql)
	r.mu.Unlock()
}

func (r *sqlRecorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.stmt
	r.stmt = nil
	return out
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	stmts := r.take()
	require.NotEmpty(t, stmts)
	return stmts[len(stmts)-1]
}

// dryRunDB renders SQL without a server: nothing is sent and every write
// reports zero rows affected.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=tattoo dbname=tattoo sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return db, rec
}

// ======================================================
// APPOINTMENTS
// ======================================================

func TestAppointmentGorm_LockArtistTakesRowLock(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	require.NoError(t, repo.LockArtist(context.Background(), 3))

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, "SELECT"), sql)
	assert.Contains(t, sql, `FROM "tatuadores"`)
	assert.Contains(t, sql, `"tatuadores"."id" = 3`)
	assert.True(t, strings.HasSuffix(sql, "FOR UPDATE"), sql)
}

func TestAppointmentGorm_ListForArtistOnDateComparesDateString(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	// late evening west of UTC is still 2024-05-01 on the wall clock
	date := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	_, err := repo.ListForArtistOnDate(context.Background(), 3, date)
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "citas"`)
	assert.Contains(t, sql, `tatuador_id = 3 AND fecha = '2024-05-01'`)
	assert.Contains(t, sql, "ORDER BY hora_inicio ASC")
	assert.NotContains(t, sql, "FOR UPDATE")
}

func TestAppointmentGorm_ListJoinsClientAndArtist(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `LEFT JOIN "clientes" "Client"`)
	assert.Contains(t, sql, `LEFT JOIN "tatuadores" "Artist"`)
	assert.Contains(t, sql, "ORDER BY citas.id ASC")
}

func TestAppointmentGorm_CreateSkipsAssociations(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	ap := &models.Appointment{
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		ClientID:  1,
		Client:    models.Client{ID: 1, Name: "Ana", Email: "ana@example.com"},
		ArtistID:  2,
		Artist:    models.Artist{ID: 2, Name: "Leo"},
	}
	require.NoError(t, repo.Create(context.Background(), ap))

	stmts := rec.take()
	require.Len(t, stmts, 1, stmts)
	assert.True(t, strings.HasPrefix(stmts[0], `INSERT INTO "citas"`), stmts[0])
	assert.NotContains(t, stmts[0], `"clientes"`)
	assert.NotContains(t, stmts[0], `"tatuadores"`)
}

func TestAppointmentGorm_ClientExistsCounts(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	ok, err := repo.ClientExists(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)

	sql := rec.last(t)
	assert.Contains(t, sql, `count(*)`)
	assert.Contains(t, sql, `FROM "clientes"`)
	assert.Contains(t, sql, "id = 5")
}

func TestAppointmentGorm_UpdateWritesClearedFields(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	err := repo.Update(context.Background(), &models.Appointment{
		ID:        7,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	// no row matched
	assert.ErrorIs(t, err, domainAppointment.ErrNotFound)

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `UPDATE "citas" SET`), sql)
	assert.Contains(t, sql, `"descripcion"=NULL`)
	assert.Contains(t, sql, `"imagen_url"=NULL`)
	assert.Contains(t, sql, `"id" = 7`)
}

func TestAppointmentGorm_DeleteUnknownIsNotFound(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), domainAppointment.ErrNotFound)
	assert.True(t, strings.HasPrefix(rec.last(t), `DELETE FROM "citas"`))
}

// ======================================================
// CLIENTS / ARTISTS
// ======================================================

func TestClientGorm_DeleteUnknownIsNotFound(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewClientGormRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), domainClient.ErrNotFound)
	assert.True(t, strings.HasPrefix(rec.last(t), `DELETE FROM "clientes"`))
}

func TestArtistGorm_UpdateUnknownIsNotFound(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewArtistGormRepository(db)

	err := repo.Update(context.Background(), &models.Artist{ID: 4, Name: "Leo"})
	assert.ErrorIs(t, err, domainArtist.ErrNotFound)

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `UPDATE "tatuadores" SET`), sql)
	assert.Contains(t, sql, `"estilo"=NULL`)
}
