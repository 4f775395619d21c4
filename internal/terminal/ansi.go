package terminal

// ANSI sequences used by the console screens.
const (
	Reset       = "\033[0m"
	FgBrightRed = "\033[1;31m"
)

// ClearScreen sends the ANSI clear-screen sequence and homes the cursor.
func ClearScreen() string {
	return "\033[2J\033[1;1H"
}
