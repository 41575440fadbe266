package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

func TestGormConnection(t *testing.T) {
	gormDB := openTestDB(t)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.BookingRepository())
	assert.NotNil(t, uow.AvailabilityRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})
}

// Two goroutines race to reserve the same slot. Exactly one must win;
// this is the property that prevents double-booking.
func TestConcurrentReservation(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	tutor := &entity.User{
		Id:       uuid.New(),
		Email:    "tutor-race-" + uuid.New().String() + "@example.com",
		FullName: "Race Tutor",
		Role:     entity.UserRoleTutor,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, tutor))

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	slot := &entity.Availability{
		Id:        uuid.New(),
		TutorId:   tutor.Id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	require.NoError(t, uow.AvailabilityRepository().Create(ctx, slot))

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := uowFactory.NewUnitOfWork(ctx)
			reserved, err := w.AvailabilityRepository().Reserve(ctx, slot.Id)
			assert.NoError(t, err)
			results[i] = reserved
		}(i)
	}
	wg.Wait()

	assert.NotEqual(t, results[0], results[1], "exactly one reservation should win")

	// Release returns the slot to bookable state.
	require.NoError(t, uow.AvailabilityRepository().Release(ctx, slot.Id))
	reserved, err := uow.AvailabilityRepository().Reserve(ctx, slot.Id)
	assert.NoError(t, err)
	assert.True(t, reserved)
}
