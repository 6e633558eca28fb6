package dto

// ChapterFields is the sparse attribute set accepted by chapter create
// and update requests. Nil means "not supplied", which is distinct from
// a supplied zero value (budget=0 marks a chapter premium).
type ChapterFields struct {
	DomainID     *int64
	ParentID     *int64
	Title        *string
	EnableVideo  *bool
	EnableImage  *bool
	EnableWiki   *bool
	EnableChat   *bool
	EnableExpert *bool
	EnableAdd    *bool
	Playlist     *string
	Budget       *float64
}

// Empty reports whether no field was supplied.
func (f *ChapterFields) Empty() bool {
	return f == nil || (f.DomainID == nil && f.ParentID == nil && f.Title == nil &&
		f.EnableVideo == nil && f.EnableImage == nil && f.EnableWiki == nil &&
		f.EnableChat == nil && f.EnableExpert == nil && f.EnableAdd == nil &&
		f.Playlist == nil && f.Budget == nil)
}
