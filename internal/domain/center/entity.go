package center

import "time"

type Center struct {
	ID        string
	Name      string
	Address   *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	TrainerCount *int
	MemberCount  *int
}

// Image is one photo in a center's gallery. At most one image per
// center carries IsMain.
type Image struct {
	ID        string
	CenterID  string
	ImageName string
	ImagePath string
	IsMain    bool
	SortOrder int
	CreatedAt time.Time
}
