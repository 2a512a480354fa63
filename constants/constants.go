package constants

import "time"

const (
	// RequestTimeout define http request timeout
	RequestTimeout = time.Second * 5
	// DatePattern define provider date pattern
	DatePattern = "2006-01-02"
	// DownloadChunkSize define streamed download buffer size
	DownloadChunkSize = 32 * 1024
	// AlphaVantageURL define alpha vantage query endpoint
	AlphaVantageURL = "https://www.alphavantage.co/query"
	// AlphaVantageWeeklyFunction define default time series function
	AlphaVantageWeeklyFunction = "TIME_SERIES_WEEKLY"
	// AlphaVantageKeyEnv define api key environment variable
	AlphaVantageKeyEnv = "ALPHAVANTAGE_API_KEY"
	// WeeklySeriesKey define the response key holding weekly quotes
	WeeklySeriesKey = "Weekly Time Series"
	// ApodURL define astronomy picture of the day endpoint
	ApodURL = "https://go-apod.herokuapp.com/apod"
	// DefaultChartAddress define chart server listen address
	DefaultChartAddress = ":21000"
)
