package models

// Chapter is a node in a forest of topical categories. ParentID is a
// soft self-reference: it is not validated against existing rows and a
// deleted parent leaves children dangling on purpose. A Budget of
// exactly zero marks the chapter premium for the help-item collaborator.
type Chapter struct {
	ChapterID    int64    `json:"chapterID"`
	DomainID     *int64   `json:"domainID"`
	ParentID     *int64   `json:"parentID"`
	Title        *string  `json:"title"`
	EnableVideo  bool     `json:"enableVideo"`
	EnableImage  bool     `json:"enableImage"`
	EnableWiki   bool     `json:"enableWiki"`
	EnableChat   bool     `json:"enableChat"`
	EnableExpert bool     `json:"enableExpert"`
	EnableAdd    bool     `json:"enableAdd"`
	Playlist     *string  `json:"playlist"`
	Budget       *float64 `json:"budget"`
}
