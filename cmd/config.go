package cmd

import "github.com/shopspring/decimal"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Cron expressions with seconds; empty disables the job.
	ClassifySchedule string
	GroupingSchedule string

	// ClassifyWorkers bounds the parallel classification of OPEN orders.
	ClassifyWorkers int
	// GroupageLDMMax is the loading metre ceiling above which a groupage
	// order is shipped DIRECT_PARTIAL. Zero keeps the default of 3.0.
	GroupageLDMMax decimal.Decimal
}
