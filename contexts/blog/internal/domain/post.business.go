package domain

type PostID int

// Post belongs to exactly one User, referenced by OwnerID.
type Post struct {
	ID      PostID
	OwnerID UserID
	Title   string
}

type PostFields struct {
	OwnerID UserID
	Title   string
}

func NewPost(id PostID, fields PostFields) Post {
	return Post{
		ID:      id,
		OwnerID: fields.OwnerID,
		Title:   fields.Title,
	}
}

// PostChanges is a partial update. Setting OwnerID moves the post to another user,
// the caller has to ensure that user exists.
type PostChanges struct {
	OwnerID *UserID
	Title   *string
}

func (c PostChanges) Apply(p *Post) {
	if c.OwnerID != nil {
		p.OwnerID = *c.OwnerID
	}

	if c.Title != nil {
		p.Title = *c.Title
	}
}

func (c PostChanges) IsEmpty() bool {
	return c.OwnerID == nil && c.Title == nil
}

// BelongsTo reports whether owner owns the post.
func (p Post) BelongsTo(owner UserID) bool {
	return p.OwnerID == owner
}
