package screen

// SearchScreen reads a query and shows the matching employees.
type SearchScreen struct{}

func (SearchScreen) Name() string { return Search }

func (SearchScreen) Header(Context) string { return "Search Employees" }

func (SearchScreen) Body(Context) string {
	return "***  Insert Search Query by names, or username to Search  ***\n"
}

func (SearchScreen) Interact(c Context) (Target, error) {
	query, err := c.Terminal().Ask("Query")
	if err != nil {
		return Target{}, err
	}
	return ToResults(query, c.Directory().Search(query)), nil
}
