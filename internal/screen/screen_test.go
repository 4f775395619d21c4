package screen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepid/employee_directory/internal/directory"
	"github.com/notepid/employee_directory/internal/employee"
	"github.com/notepid/employee_directory/internal/terminal"
)

type stubContext struct {
	term    *terminal.Terminal
	dir     *directory.Directory
	current *employee.Employee
	notice  string
	records []string
}

func newStub(t *testing.T, input string) (*stubContext, *bytes.Buffer) {
	t.Helper()
	dir, err := directory.Load(t.TempDir(), directory.Seed{Username: "testing", Password: "password"})
	require.NoError(t, err)

	var out bytes.Buffer
	return &stubContext{
		term: terminal.New(strings.NewReader(input), &out, false),
		dir:  dir,
	}, &out
}

func (s *stubContext) Terminal() *terminal.Terminal    { return s.term }
func (s *stubContext) Directory() *directory.Directory { return s.dir }
func (s *stubContext) HeaderWidth() int                { return 44 }
func (s *stubContext) Current() *employee.Employee     { return s.current }
func (s *stubContext) Notify(msg string)               { s.notice = msg }

func (s *stubContext) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

func (s *stubContext) Login(username, password string) bool {
	s.current = s.dir.Authenticate(username, password)
	return s.current != nil
}

func (s *stubContext) Record(action string, target *employee.Employee, detail string) {
	s.records = append(s.records, action)
}

func titles(opts []Option) []string {
	var out []string
	for _, o := range opts {
		out = append(out, o.Title)
	}
	return out
}

func TestOptions_GatedByPermission(t *testing.T) {
	cases := []struct {
		name  string
		perms employee.Permission
		want  []string
	}{
		{"everything", employee.All, []string{"View Employees", "Search Employees", "Add Employee", "Remove Employee", "View Your File"}},
		{"management", employee.General | employee.Management, []string{"View Employees", "Search Employees", "View Your File"}},
		{"general", employee.General, []string{"View Your File"}},
		{"single HR bit", employee.Permission(8), []string{"View Employees", "Search Employees", "Add Employee", "Remove Employee"}},
		{"nothing", 0, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options(&employee.Employee{Permissions: tc.perms})
			assert.Equal(t, tc.want, titles(opts))
			for i, o := range opts {
				assert.Equal(t, i+1, o.Position, "options are numbered from 1 without gaps")
			}
		})
	}

	assert.Empty(t, Options(nil))
}

func TestOptions_RemoveOpensRemoveList(t *testing.T) {
	opts := Options(&employee.Employee{Permissions: employee.All})
	require.Len(t, opts, 5)
	assert.Equal(t, Remove, opts[3].Screen)
}

func TestDisplay_RendersInOrder(t *testing.T) {
	c, out := newStub(t, "0\n")
	c.current = c.dir.FindByID(1)
	c.Notify("Saved.")

	next, err := Display(MenuScreen{}, c)
	require.NoError(t, err)
	assert.Equal(t, Exit, next.Name)

	s := out.String()
	header := strings.Index(s, "Welcome")
	notice := strings.Index(s, "Saved.")
	body := strings.Index(s, "What do you need to do today?")
	prompt := strings.Index(s, "Choice> ")
	assert.True(t, header >= 0 && header < notice && notice < body && body < prompt, "output:\n%s", s)
	assert.Empty(t, c.TakeNotice())
}

func TestSearchScreen_SeedsList(t *testing.T) {
	c, _ := newStub(t, "TEST\n")

	next, err := SearchScreen{}.Interact(c)
	require.NoError(t, err)

	assert.Equal(t, List, next.Name)
	assert.True(t, next.Seeded)
	assert.Equal(t, "TEST", next.Query)
	require.Len(t, next.Results, 1)
	assert.Equal(t, 1, next.Results[0].ID)

	ls := &ListScreen{Seeded: next.Seeded, Query: next.Query, Results: next.Results}
	assert.Equal(t, `Results for "TEST"`, ls.Header(c))
}

func TestListScreen_EmptyResults(t *testing.T) {
	c, out := newStub(t, "1\n0\n")
	c.current = c.dir.FindByID(1)

	ls := &ListScreen{Seeded: true, Query: "zzz"}
	next, err := ls.Interact(c)
	require.NoError(t, err)

	assert.Equal(t, Menu, next.Name)
	assert.Contains(t, out.String(), "No employees found.")
	assert.Contains(t, out.String(), "Please input the id of a listed employee.")
}

func TestListScreen_RemoveRefusalIsReported(t *testing.T) {
	c, _ := newStub(t, "2\n")
	c.current = c.dir.FindByID(1)
	other := employee.New("Ada", "Lovelace", "ada", "engine", employee.General)
	require.NoError(t, c.dir.Add(other))

	// The directory refuses to remove its authenticated id even when the
	// list shows it.
	c.dir.SetCurrentID(other.ID)

	next, err := (&ListScreen{RemoveMode: true}).Interact(c)
	require.NoError(t, err)

	assert.True(t, next.IsStay())
	assert.Equal(t, "Could not remove 2: Ada Lovelace, ada", c.TakeNotice())
	assert.NotNil(t, c.dir.FindByID(2))
	assert.Empty(t, c.records)
}

func TestTargets(t *testing.T) {
	e := &employee.Employee{ID: 4}

	assert.True(t, Stay.IsStay())
	assert.False(t, To(Menu).IsStay())
	assert.Equal(t, Target{Name: File, Employee: e}, ToFile(e))
	assert.Equal(t, Target{Name: Edit, Employee: e}, ToEdit(e))
}
