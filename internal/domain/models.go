package domain

// Meta carries the fields every stored record shares. Version is bumped on
// each update and is what stale-write detection checks against.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Version   int    `json:"version"`
}

func (m *Meta) EntityID() string { return m.ID }

func (m *Meta) MetaVersion() int { return m.Version }

// Init stamps a freshly created record.
func (m *Meta) Init(id, now string) {
	m.ID = id
	m.CreatedAt = now
	m.Version = 1
}

// Touch marks a mutation.
func (m *Meta) Touch(now string) {
	m.UpdatedAt = now
	m.Version++
}

// Gear status lifecycle.
const (
	StatusForSale = "for-sale"
	StatusSold    = "sold"
	StatusWaiting = "waiting"
	StatusArrived = "arrived"
	StatusShipped = "shipped"
)

type Gear struct {
	Meta
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	PricePerDay float64  `json:"pricePerDay"`
	Deposit     float64  `json:"deposit,omitempty"`
	Available   bool     `json:"available"` // legacy flag, kept for old clients
	Status      string   `json:"status"`
	Brand       string   `json:"brand,omitempty"`
	Color       string   `json:"color,omitempty"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images,omitempty"`
}

// CategoryFields exposes the two legacy category tags for matching.
func (g Gear) CategoryFields() (id, slug string) { return g.CategoryID, g.Category }

type Campsite struct {
	Meta
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities,omitempty"`
	Rules         []string `json:"rules,omitempty"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"`
}

type BlogPost struct {
	Meta
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Published  bool     `json:"published"`
}

type Category struct {
	Meta
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parentId,omitempty"` // empty for roots; UI assumes 2 levels
	Order    int    `json:"order"`
}

type Brand struct {
	Meta
	Name string `json:"name"`
}

type Color struct {
	Meta
	Name    string `json:"name"`
	HexCode string `json:"hexCode,omitempty"`
}

// Review targets exactly one of GearID or CampsiteID. The referenced record
// may have been deleted since; readers tolerate dangling targets.
type Review struct {
	Meta
	GearID       string  `json:"gearId,omitempty"`
	CampsiteID   string  `json:"campsiteId,omitempty"`
	Author       string  `json:"author,omitempty"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	IsApproved   bool    `json:"isApproved"`
	HelpfulCount int     `json:"helpfulCount"`
}

// Message read lifecycle.
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

type Message struct {
	Meta
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
	Status  string `json:"status"`
}

// Appointment lifecycle.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

type Appointment struct {
	Meta
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Date   string `json:"date"`
	Note   string `json:"note,omitempty"`
	Status string `json:"status"`
}

type NewsletterSubscription struct {
	Meta
	Email string `json:"email"`
}

type ReferenceBrand struct {
	Meta
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Website string `json:"website,omitempty"`
}

type ReferenceImage struct {
	Meta
	BrandID string `json:"brandId,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Order   int    `json:"order"`
}
