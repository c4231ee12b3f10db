package library

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned for store lines that cannot be read back as a member
var ErrMalformedRecord = errors.New("malformed member record")

/* Member records are "<id>,<name>".
 * Only the first comma separates fields, so names like "Smith, Jr." survive a round trip.
 */

// FormatRecord encodes a member as a store line, without the trailing newline
func FormatRecord(m Member) string {
	return strconv.FormatInt(m.ID, 10) + "," + m.Name
}

// ParseRecord decodes a store line produced by FormatRecord
func ParseRecord(line string) (Member, error) {
	line = strings.TrimRight(line, "\r\n")
	idField, name, found := strings.Cut(line, ",")
	if !found {
		return Member{}, fmt.Errorf("%w: missing separator in %q", ErrMalformedRecord, line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idField), 10, 64)
	if err != nil {
		return Member{}, fmt.Errorf("%w: parsing id %q: %v", ErrMalformedRecord, idField, err)
	}
	return NewMember(id, name), nil
}
