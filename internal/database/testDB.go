package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records for handler tests
var (
	TestJobApplied   m.Job
	TestJobInterview m.Job
	TestJobOffer     m.Job

	TestDefaultTemplate m.ResumeTemplate
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample jobs and load the default template
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample job records if the jobs table is empty.
func seedTestData(db *DBinstanceStruct) error {
	// NewDBInstance already seeded the default template; load it
	if err := db.Where("is_default = ?", true).First(&TestDefaultTemplate).Error; err != nil {
		return err
	}

	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		return loadTestData(db)
	}

	jobs := []m.Job{
		{
			Company:   "TechNova",
			Position:  "Backend Engineer",
			Link:      "https://technova.example.com/careers/42",
			Status:    m.StatusApplied,
			Notes:     "Referred by a former colleague",
			DateAdded: time.Now().AddDate(0, 0, -3),
		},
		{
			Company:   "DataForge",
			Position:  "Platform Engineer",
			Status:    m.StatusInInterview,
			DateAdded: time.Now().AddDate(0, 0, -2),
		},
		{
			Company:   "CloudWorks",
			Position:  "Site Reliability Engineer",
			Link:      "https://cloudworks.example.com/jobs/7",
			Status:    m.StatusOffer,
			Notes:     "Offer deadline next Friday",
			DateAdded: time.Now().AddDate(0, 0, -1),
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	TestJobApplied = jobs[0]
	TestJobInterview = jobs[1]
	TestJobOffer = jobs[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err != nil {
		return err
	}
	if len(jobs) > 0 {
		TestJobApplied = jobs[0]
	}
	if len(jobs) > 1 {
		TestJobInterview = jobs[1]
	}
	if len(jobs) > 2 {
		TestJobOffer = jobs[2]
	}
	return nil
}
