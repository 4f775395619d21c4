package employee

import (
	"encoding/csv"
	"strconv"
	"strings"
)

const fieldCount = 6

// Serialize encodes the record as one comma-separated line (no trailing
// newline) in the order id, username, first name, last name, password,
// permissions. Fields containing commas, quotes or surrounding spaces are
// quoted so every value round-trips.
func (e *Employee) Serialize() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	// csv.Writer only fails when the underlying writer does.
	_ = w.Write([]string{
		strconv.Itoa(e.ID),
		e.Username,
		e.FirstName,
		e.LastName,
		e.Password,
		strconv.Itoa(int(e.Permissions)),
	})
	w.Flush()
	return strings.TrimRight(b.String(), "\r\n")
}

// Deserialize parses a line written by Serialize. A line without any comma
// is read as the older whitespace-separated layout.
func Deserialize(line string) (*Employee, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil, malformed("empty line")
	}

	var fields []string
	if strings.Contains(line, ",") {
		r := csv.NewReader(strings.NewReader(line))
		r.FieldsPerRecord = -1
		rec, err := r.Read()
		if err != nil {
			return nil, malformed("%v", err)
		}
		fields = rec
	} else {
		fields = strings.Fields(line)
	}

	if len(fields) != fieldCount {
		return nil, malformed("want %d fields, got %d", fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, malformed("id %q is not an integer", fields[0])
	}
	if id <= 0 {
		return nil, malformed("id %d is not positive", id)
	}

	perms, err := strconv.Atoi(strings.TrimSpace(fields[5]))
	if err != nil {
		return nil, malformed("permissions %q is not an integer", fields[5])
	}
	if perms < 0 || Permission(perms)&^validBits != 0 {
		return nil, malformed("permissions %d out of range", perms)
	}

	return &Employee{
		ID:          id,
		Username:    fields[1],
		FirstName:   fields[2],
		LastName:    fields[3],
		Password:    fields[4],
		Permissions: Permission(perms),
	}, nil
}
