package media

type listInput struct {
	Type string `query:"type" default:"all" doc:"all, films или tvShows"`
}

type listOutput struct {
	Body listResponse
}

// listResponse содержит только запрошенные списки, поэтому поля - указатели.
type listResponse struct {
	Films   *[]string `json:"films,omitempty"`
	TVShows *[]string `json:"tvShows,omitempty"`
}
