package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const referencePrefix = "MNTLE"

// GenerateReference builds a payment reference unique enough to avoid
// collision: millisecond timestamp plus a random hex suffix.
func GenerateReference() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to the nanosecond clock rather than aborting a payment.
		return fmt.Sprintf("%s-%d-%08x", referencePrefix, time.Now().UnixMilli(), time.Now().UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("%s-%d-%s", referencePrefix, time.Now().UnixMilli(), hex.EncodeToString(buf))
}
