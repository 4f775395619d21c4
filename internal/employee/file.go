package employee

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileExt is the extension of every record file.
const FileExt = ".txt"

// FileName returns the record file name for an id, e.g. "7.txt".
func FileName(id int) string {
	return strconv.Itoa(id) + FileExt
}

// ParseFileName extracts the id from a record file name. ok is false for
// names that are not exactly FileName(id) for a positive id, so "02.txt"
// and "+2.txt" are rejected.
func ParseFileName(name string) (id int, ok bool) {
	if filepath.Ext(name) != FileExt {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSuffix(name, FileExt))
	if err != nil || id <= 0 || name != FileName(id) {
		return 0, false
	}
	return id, true
}

// Path returns the record file path inside dir.
func (e *Employee) Path(dir string) string {
	return filepath.Join(dir, FileName(e.ID))
}

// Save writes (or overwrites) the record file inside dir.
func (e *Employee) Save(dir string) error {
	path := e.Path(dir)
	if err := os.WriteFile(path, []byte(e.Serialize()+"\n"), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Delete removes the record file from dir.
func (e *Employee) Delete(dir string) error {
	path := e.Path(dir)
	if err := os.Remove(path); err != nil {
		return &IOError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// ReadFile parses the first non-blank line of a record file.
func ReadFile(path string) (*Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		return Deserialize(sc.Text())
	}
	return nil, malformed("%s is empty", path)
}
