package dto

// ExpertFields is the sparse attribute set accepted by expert create and
// update requests. A nil pointer means the parameter was not supplied
// and the corresponding column must not appear in the generated SQL.
type ExpertFields struct {
	UserID      *int64
	Name        *string
	Description *string
	Schedule    *string
	Languages   *string
	Online      *string
	Price       *float64
	Ranking     *float64
	Jobs        *int64
	Type        *string
	URLImage    *string
	URLVideo    *string
	Active      *bool
}

// Empty reports whether no field was supplied.
func (f *ExpertFields) Empty() bool {
	return f == nil || (f.UserID == nil && f.Name == nil && f.Description == nil &&
		f.Schedule == nil && f.Languages == nil && f.Online == nil &&
		f.Price == nil && f.Ranking == nil && f.Jobs == nil && f.Type == nil &&
		f.URLImage == nil && f.URLVideo == nil && f.Active == nil)
}
