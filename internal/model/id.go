package model

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ID is an opaque entity identifier. Persisted data mixes numeric
// timestamp ids with externally assigned strings ("cat_2"), so an ID
// round-trips both JSON forms and compares loosely by canonical value:
// ID("1700000000000") matches the JSON number 1700000000000.
type ID string

// String returns the canonical string form.
func (id ID) String() string {
	return canonicalID(string(id))
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// Equal compares two ids by canonical value, matching numeric and
// string representations of the same logical id.
func (id ID) Equal(other ID) bool {
	return canonicalID(string(id)) == canonicalID(string(other))
}

// canonicalID normalizes integer-valued ids to their decimal form so
// that loose comparison works regardless of the original JSON type.
func canonicalID(s string) string {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return s
}

// MarshalJSON emits integer-valued ids as JSON numbers to stay
// byte-compatible with previously persisted data.
func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return []byte(strconv.Quote(s)), nil
}

// UnmarshalJSON accepts both string and number forms.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", s, err)
		}
		*id = ID(unquoted)
		return nil
	}
	// Number literal. Floats appear when a numeric id passed through a
	// float-typed decoder; normalize integral values.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		*id = ID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*id = ID(s)
	return nil
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID generates a unique id from the current time in milliseconds.
// Successive calls within the same millisecond are bumped forward so
// ids stay strictly increasing.
func NewID() ID {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return ID(strconv.FormatInt(now, 10))
}

// NewCategoryID generates a category id in the persisted "cat_" form.
func NewCategoryID() ID {
	return ID("cat_" + string(NewID()))
}
