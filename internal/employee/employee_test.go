package employee

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidLogin(t *testing.T) {
	e := New("Ada", "Lovelace", "ada", "engine", General)

	assert.True(t, e.IsValidLogin("ada", "engine"))
	assert.False(t, e.IsValidLogin("Ada", "engine"), "username match is case-sensitive")
	assert.False(t, e.IsValidLogin("ada", "Engine"))
	assert.False(t, e.IsValidLogin("", ""))
}

// HasPermission is an any-bit test: one HR bit is enough to pass an HR check.
func TestHasPermission_AnyBitSemantics(t *testing.T) {
	for _, bit := range []Permission{4, 8, 16} {
		e := &Employee{Permissions: bit}
		assert.True(t, e.HasPermission(HR), "bit %d alone should satisfy HR", bit)
		assert.False(t, e.HasAll(HR), "bit %d alone is not the whole HR group", bit)
		assert.False(t, e.HasPermission(Management))
		assert.False(t, e.HasPermission(General))
	}

	e := &Employee{Permissions: General | Management}
	assert.True(t, e.HasPermission(General))
	assert.True(t, e.HasPermission(Management))
	assert.False(t, e.HasPermission(HR))
	assert.True(t, e.HasPermission(HR|Management), "overlap on a combined mask")
}

func TestMask(t *testing.T) {
	assert.Equal(t, General, Mask(false, false))
	assert.Equal(t, General|Management, Mask(false, true))
	assert.Equal(t, Permission(3), Mask(false, true))
	assert.Equal(t, General|HR, Mask(true, false))
	assert.Equal(t, Permission(31), Mask(true, true))
	assert.Equal(t, All, Mask(true, true))
}

func TestUpdatePermissions_DropsUnknownBits(t *testing.T) {
	e := New("a", "b", "c", "d", General)
	e.UpdatePermissions(Permission(0xFF))
	assert.Equal(t, All, e.Permissions)

	e.UpdatePassword("new")
	assert.Equal(t, "new", e.Password)
}

func TestSerialize_RoundTrip(t *testing.T) {
	cases := []*Employee{
		{ID: 1, Username: "testing", FirstName: "System", LastName: "Administrator", Password: "password", Permissions: All},
		{ID: 12, Username: "mvb", FirstName: "Mary Ann", LastName: "van der Berg", Password: "pass word", Permissions: General | Management},
		{ID: 3, Username: "q", FirstName: `Quote "Q"`, LastName: "Comma, Jr.", Password: " lead", Permissions: General},
		{ID: 4, Username: "blank", FirstName: "", LastName: "", Password: "", Permissions: 0},
	}

	for _, want := range cases {
		line := want.Serialize()
		assert.NotContains(t, line, "\n")

		got, err := Deserialize(line)
		require.NoError(t, err, "line %q", line)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDeserialize_LegacyWhitespaceLayout(t *testing.T) {
	got, err := Deserialize("1 testing Titus Moore password 31\n")
	require.NoError(t, err)

	want := &Employee{ID: 1, Username: "testing", FirstName: "Titus", LastName: "Moore", Password: "password", Permissions: 31}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("legacy parse mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserialize_Malformed(t *testing.T) {
	lines := map[string]string{
		"empty":           "",
		"too few tokens":  "1 user first last pass",
		"too few fields":  "1,user,first,last,pass",
		"too many fields": "1,user,first,last,pass,3,extra",
		"id not integer":  "one,user,first,last,pass,3",
		"id not positive": "0,user,first,last,pass,3",
		"perms text":      "1,user,first,last,pass,all",
		"perms range":     "1,user,first,last,pass,64",
		"bad quoting":     `1,"user,first,last,pass,3`,
	}

	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			_, err := Deserialize(line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)
		})
	}
}

func TestSaveAndReadFile(t *testing.T) {
	dir := t.TempDir()
	e := &Employee{ID: 7, Username: "grace", FirstName: "Grace", LastName: "Hopper", Password: "cobol", Permissions: General | HR}

	require.NoError(t, e.Save(dir))
	assert.FileExists(t, filepath.Join(dir, "7.txt"))

	got, err := ReadFile(filepath.Join(dir, "7.txt"))
	require.NoError(t, err)
	if diff := cmp.Diff(e, got); diff != "" {
		t.Fatalf("saved record mismatch (-want +got):\n%s", diff)
	}

	// Overwrite in place.
	e.FirstName = "Rear Admiral Grace"
	require.NoError(t, e.Save(dir))
	got, err = ReadFile(filepath.Join(dir, "7.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Rear Admiral Grace", got.FirstName)

	require.NoError(t, e.Delete(dir))
	assert.NoFileExists(t, filepath.Join(dir, "7.txt"))
}

func TestSave_IOError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	e := &Employee{ID: 1, Username: "x"}

	err := e.Save(missing)
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0644))

	_, err := ReadFile(path)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestParseFileName(t *testing.T) {
	id, ok := ParseFileName("42.txt")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	for _, name := range []string{"notes.txt", "42.bak", "-1.txt", "0.txt", "42", "042.txt", "+42.txt"} {
		_, ok := ParseFileName(name)
		assert.False(t, ok, name)
	}
}

func TestDisplayForms(t *testing.T) {
	e := &Employee{ID: 5, Username: "ada", FirstName: "Ada", LastName: "Lovelace", Permissions: General | Management}

	assert.Equal(t, "5: Ada Lovelace, ada", e.Summary())
	assert.Equal(t, "Ada Lovelace", e.FullName())
	assert.Equal(t, "ID: 5\nName: Ada Lovelace\nUsername: ada\nPermissions: Management, General\n", e.Profile())
	assert.Equal(t, "none", Permission(0).String())
}
