// Package numbering mints human-facing document numbers and opaque object
// identifiers for invoices and estimates.
package numbering

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// PREFIX-YYYY-NNNN with an exactly four digit suffix. A suffix past 9999
// widens on output but no longer matches on the next scan; that quirk is
// inherited and left alone.
var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d{4})$`)

// Next returns the next document number for (prefix, year) given every number
// already in use. The sequence is max(existing suffixes)+1, never count+1:
// counting re-issues a number as soon as an earlier document is deleted.
// Numbers from other years or with a different prefix are ignored, as are
// strings that do not parse at all.
func Next(prefix string, existing []string, year int) string {
	maxSeq := 0
	for _, number := range existing {
		match := numberPattern.FindStringSubmatch(number)
		if match == nil || match[1] != prefix {
			continue
		}
		if y, err := strconv.Atoi(match[2]); err != nil || y != year {
			continue
		}
		seq, err := strconv.Atoi(match[3])
		if err != nil || seq <= 0 {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, maxSeq+1)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	idMu   sync.Mutex
	idRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// UniqueID returns an opaque identifier of the form
// "<prefix>-<unix millis>-<5 lowercase alphanumerics>". Uniqueness is
// probabilistic; good enough for a single-writer store, not for a
// multi-writer system.
func UniqueID(prefix string) string {
	suffix := make([]byte, 5)
	idMu.Lock()
	for i := range suffix {
		suffix[i] = idAlphabet[idRand.Intn(len(idAlphabet))]
	}
	idMu.Unlock()
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
