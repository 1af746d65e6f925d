package adapters

import (
	"errors"
	"strconv"
	"time"
)

var errNotFound = errors.New("item not found")

// IsNotFound reports whether an error from one of the Dynamo stores means
// the requested item does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
