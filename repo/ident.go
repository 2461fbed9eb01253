package repo

import (
	"fmt"
	"strconv"
	"time"
)

// NewID generates a record id: the creation instant as a decimal
// nanosecond timestamp. Unique for a single writer, which is the
// deployment model of this store.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// CaseIdentifiers derives the three business codes for a new case from
// its id and creation instant:
//
//	referenceNumber  LC-{year}-{suffix}
//	fileNumber       F-{suffix}-{year}
//	caseNumber       C-{yy}-{suffix}
//
// where suffix is the last three digits of the id. All three share one
// generation instant so they stay mutually consistent.
func CaseIdentifiers(id string, now time.Time) (referenceNumber, fileNumber, caseNumber string) {
	year := now.Year()
	suffix := lastDigits(id, 3)
	shortYear := lastDigits(strconv.Itoa(year), 2)

	referenceNumber = fmt.Sprintf("LC-%d-%s", year, suffix)
	fileNumber = fmt.Sprintf("F-%s-%d", suffix, year)
	caseNumber = fmt.Sprintf("C-%s-%s", shortYear, suffix)
	return referenceNumber, fileNumber, caseNumber
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
