package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/pkg/logger"
)

type CatalogIntegrationTestSuite struct {
	suite.Suite
	dbPool          *pgxpool.Pool
	pgContainer     *postgres.PostgresContainer
	productSource   product.Source
	interactionRepo interaction.Repository
}

func (s *CatalogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewNopLogger()
	s.productSource = NewPostgresProductSource(s.dbPool, testLogger)
	s.interactionRepo = NewPostgresInteractionRepo(s.dbPool, testLogger)
}

func (s *CatalogIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestCatalogIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(CatalogIntegrationTestSuite))
}

func (s *CatalogIntegrationTestSuite) Test_LoadAll_SeededCatalog() {
	ctx := context.Background()

	items, err := s.productSource.LoadAll(ctx)

	s.NoError(err)
	s.Len(items, 12)
	s.Equal("P001", items[0].ID)

	catalog, err := product.NewCatalog(items)
	s.NoError(err)
	s.Equal(12, catalog.Len())
	s.Contains(catalog.Categories(), "electronics")
}

func (s *CatalogIntegrationTestSuite) Test_SaveInteraction_Idempotent() {
	ctx := context.Background()

	event := &interaction.Event{
		ID:         uuid.New(),
		UserID:     "user1",
		Type:       interaction.TypePurchase,
		ProductID:  "P001",
		OccurredAt: time.Now().UTC(),
	}

	s.NoError(s.interactionRepo.Save(ctx, event))
	// Redelivered messages hit the same primary key and must not fail.
	s.NoError(s.interactionRepo.Save(ctx, event))

	var count int
	err := s.dbPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM interaction_events WHERE id = $1`, event.ID).Scan(&count)
	s.NoError(err)
	s.Equal(1, count)
}
