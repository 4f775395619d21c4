package screen

// LoginScreen asks for credentials until they match an employee.
type LoginScreen struct{}

func (LoginScreen) Name() string { return Login }

func (LoginScreen) Header(Context) string { return "Employee Directory" }

func (LoginScreen) Body(Context) string { return "***  Login to Continue  ***\n" }

func (LoginScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	for {
		username, err := term.Ask("Username")
		if err != nil {
			return Target{}, err
		}
		password, err := term.AskPassword("Password")
		if err != nil {
			return Target{}, err
		}

		if c.Login(username, password) {
			return To(Menu), nil
		}

		term.Error("Invalid login, please try again.")
	}
}
