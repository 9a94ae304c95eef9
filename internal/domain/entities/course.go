package entities

// Course is the catalog course a proposal points at.
//
// Storage model (DynamoDB):
//   - PK: id
//
// GalleryURLs is the ordered image gallery tagged to the course: the first
// image is used as the proposal cover background, the remaining ones become
// full-bleed background pages.
type Course struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	GalleryURLs []string `json:"gallery_urls,omitempty"`
}

// Period is a course's bounded sub-unit (módulo/período) holding its own
// pricing and ordered contract template list.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (course_id-index): course_id
type Period struct {
	ID          string   `json:"id"`
	CourseID    string   `json:"course_id"`
	Name        string   `json:"name"`
	Token       string   `json:"token"`
	Price       float64  `json:"price"`
	Hours       int      `json:"hours"`
	ContractIDs []string `json:"contract_ids"`
}

// Contract is a template whose Body carries inline [shortcode] placeholders
// resolved at render time from the enrollment context.
//
// Storage model (DynamoDB):
//   - PK: id
type Contract struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
