package directory

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/notepid/employee_directory/internal/employee"
)

var (
	// ErrEmptyUsername is returned when a record without a username is stored.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrDuplicateUsername is returned when another record already holds the username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrNotFound is returned when an update targets an unknown id.
	ErrNotFound = errors.New("employee not found")
)

// Seed describes the record written when the storage directory is new.
type Seed struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Directory is the in-memory set of employees backed by one file per
// record. It is owned by a single goroutine and does no locking.
type Directory struct {
	dir       string
	employees []*employee.Employee // ascending id
	nextID    int
	currentID int
}

// Load reads every record file in dir. When dir does not exist, or exists
// but is completely empty, it is created and seeded with one record holding
// every permission. Files that fail to parse are logged and skipped.
func Load(dir string, seed Seed) (*Directory, error) {
	d := &Directory{dir: dir, nextID: 1}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, &employee.IOError{Op: "read directory", Path: dir, Err: err}
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &employee.IOError{Op: "create directory", Path: dir, Err: err}
		}
		log.Printf("Created storage directory %s", dir)
	}

	if len(entries) == 0 {
		e := employee.New(seed.FirstName, seed.LastName, seed.Username, seed.Password, employee.All)
		if err := d.Add(e); err != nil {
			return nil, fmt.Errorf("seed %s: %w", dir, err)
		}
		log.Printf("Seeded first-run employee %q (id %d)", e.Username, e.ID)
		return d, nil
	}

	maxID := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		id, ok := employee.ParseFileName(name)
		if !ok {
			log.Printf("Skipping %s: not a record file name", filepath.Join(dir, name))
			continue
		}

		e, err := employee.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Skipping %s: %v", filepath.Join(dir, name), err)
			continue
		}
		if e.ID != id {
			log.Printf("Skipping %s: record id %d does not match file name", filepath.Join(dir, name), e.ID)
			continue
		}
		if d.FindByID(id) != nil {
			log.Printf("Skipping %s: duplicate id %d", filepath.Join(dir, name), id)
			continue
		}
		if !d.IsUsernameUnique(e.Username, 0) {
			log.Printf("Skipping %s: duplicate username %q", filepath.Join(dir, name), e.Username)
			continue
		}

		d.insert(e)
		if id > maxID {
			maxID = id
		}
	}

	d.nextID = maxID + 1
	log.Printf("Loaded %d employees from %s", len(d.employees), dir)

	return d, nil
}

// Dir returns the storage directory path.
func (d *Directory) Dir() string {
	return d.dir
}

// NextID returns the id the next Add will assign.
func (d *Directory) NextID() int {
	return d.nextID
}

// Len returns the number of employees.
func (d *Directory) Len() int {
	return len(d.employees)
}

// List returns every employee ordered by id. The slice is a copy; the
// records are shared.
func (d *Directory) List() []*employee.Employee {
	out := make([]*employee.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// SetCurrentID records the authenticated employee. RemoveByID refuses
// to remove this id. Zero clears it.
func (d *Directory) SetCurrentID(id int) {
	d.currentID = id
}

// CurrentID returns the id set by SetCurrentID.
func (d *Directory) CurrentID() int {
	return d.currentID
}

// FindByID returns the employee with id, or nil.
func (d *Directory) FindByID(id int) *employee.Employee {
	i, ok := d.index(id)
	if !ok {
		return nil
	}
	return d.employees[i]
}

// Search returns every employee whose first name, last name or username
// contains query, ignoring case, ordered by id.
func (d *Directory) Search(query string) []*employee.Employee {
	q := strings.ToLower(query)
	var out []*employee.Employee
	for _, e := range d.employees {
		if strings.Contains(strings.ToLower(e.FirstName), q) ||
			strings.Contains(strings.ToLower(e.LastName), q) ||
			strings.Contains(strings.ToLower(e.Username), q) {
			out = append(out, e)
		}
	}
	return out
}

// IsUsernameUnique reports whether no employee other than excludeID holds
// username. Pass 0 to exclude nobody. The match is exact.
func (d *Directory) IsUsernameUnique(username string, excludeID int) bool {
	for _, e := range d.employees {
		if e.Username == username && e.ID != excludeID {
			return false
		}
	}
	return true
}

// Authenticate returns the first employee whose credentials match, or nil.
func (d *Directory) Authenticate(username, password string) *employee.Employee {
	for _, e := range d.employees {
		if e.IsValidLogin(username, password) {
			return e
		}
	}
	return nil
}

// Add assigns the next id to e, writes its file and inserts it. Nothing is
// inserted and the id counter is left alone when the write fails.
func (d *Directory) Add(e *employee.Employee) error {
	if e.Username == "" {
		return ErrEmptyUsername
	}
	if !d.IsUsernameUnique(e.Username, 0) {
		return fmt.Errorf("add %q: %w", e.Username, ErrDuplicateUsername)
	}

	e.ID = d.nextID
	if err := e.Save(d.dir); err != nil {
		e.ID = 0
		return fmt.Errorf("add %q: %w", e.Username, err)
	}

	d.nextID++
	d.insert(e)
	return nil
}

// Update writes an edited copy of a record that is already in the
// directory and, once the file is written, copies it over the stored
// record. A failed write leaves the stored record untouched.
func (d *Directory) Update(e *employee.Employee) error {
	i, ok := d.index(e.ID)
	if !ok {
		return fmt.Errorf("update %d: %w", e.ID, ErrNotFound)
	}
	if e.Username == "" {
		return ErrEmptyUsername
	}
	if !d.IsUsernameUnique(e.Username, e.ID) {
		return fmt.Errorf("update %d: %w", e.ID, ErrDuplicateUsername)
	}
	if err := e.Save(d.dir); err != nil {
		return fmt.Errorf("update %d: %w", e.ID, err)
	}
	if d.employees[i] != e {
		*d.employees[i] = *e
	}
	return nil
}

// RemoveByID deletes the record file and drops the employee. It returns
// false without doing anything when id is the authenticated employee or
// no such id exists.
func (d *Directory) RemoveByID(id int) bool {
	if id == d.currentID {
		return false
	}

	i, ok := d.index(id)
	if !ok {
		return false
	}

	if err := d.employees[i].Delete(d.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Remove employee %d: %v", id, err)
		return false
	}

	d.employees = append(d.employees[:i], d.employees[i+1:]...)
	return true
}

func (d *Directory) index(id int) (int, bool) {
	i := sort.Search(len(d.employees), func(i int) bool {
		return d.employees[i].ID >= id
	})
	if i < len(d.employees) && d.employees[i].ID == id {
		return i, true
	}
	return i, false
}

func (d *Directory) insert(e *employee.Employee) {
	i, _ := d.index(e.ID)
	d.employees = append(d.employees, nil)
	copy(d.employees[i+1:], d.employees[i:])
	d.employees[i] = e
}
