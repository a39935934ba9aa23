package db

// Knowledge store schema fragments.
const (
	// usageStream is the ZSTREAMNAME of foreground app usage events.
	usageStream = "/app/usage"

	// sqlUsageIntervals selects raw app usage intervals whose start falls
	// inside a half-open raw timestamp window. Every value is a bound parameter.
	sqlUsageIntervals = `
		SELECT ZVALUESTRING, ZSTARTDATE, ZENDDATE
		FROM ZOBJECT
		WHERE ZSTREAMNAME = ?
		  AND ZVALUESTRING IS NOT NULL
		  AND ZVALUESTRING != ''
		  AND ZSTARTDATE >= ?
		  AND ZSTARTDATE < ?
		ORDER BY Z_PK
	`

	// sqlUsageSpan returns the earliest and latest usage start timestamps.
	sqlUsageSpan = `
		SELECT MIN(ZSTARTDATE), MAX(ZSTARTDATE), COUNT(*)
		FROM ZOBJECT
		WHERE ZSTREAMNAME = ?
	`
)
