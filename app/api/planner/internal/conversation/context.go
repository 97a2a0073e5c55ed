package conversation

// Language selects which keyword tables the bilingual detectors use.
// It is always an explicit parameter, never ambient state.
type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
)

type BudgetTier string

const (
	BudgetCheap    BudgetTier = "$"
	BudgetModerate BudgetTier = "$$"
	BudgetUpscale  BudgetTier = "$$$"
	BudgetLuxury   BudgetTier = "$$$$"
	// BudgetNone records an explicit "no preference" answer.
	BudgetNone BudgetTier = "NA"
)

// Sentinel values carried inside otherwise free-text fields.
const (
	// GeolocationSentinel asks the host to resolve the device location.
	GeolocationSentinel = "REQUEST_GEOLOCATION"
	// NeedsClarification marks a start time whose AM/PM is still unknown.
	NeedsClarification = "NEEDS_CLARIFICATION"
	// AnyPreference inside a cuisine/mood list means "stop asking".
	AnyPreference = "any"
)

type EventInfo struct {
	Type            string `json:"type,omitempty"`
	FreeDescription string `json:"freeDescription,omitempty"`
	DateISO         string `json:"dateISO,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
}

type LocationInfo struct {
	Text     string  `json:"text,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
	RadiusKm float64 `json:"radiusKm,omitempty"`
}

type Participants struct {
	Size      int    `json:"size,omitempty"`
	SizeRange string `json:"sizeRange,omitempty"`
	IsCouple  bool   `json:"isCouple,omitempty"`
	Kids      int    `json:"kids,omitempty"`
	Pets      bool   `json:"pets,omitempty"`
	HasKids   bool   `json:"hasKids,omitempty"`
	HasPets   bool   `json:"hasPets,omitempty"`
}

type BudgetInfo struct {
	Tier BudgetTier `json:"tier,omitempty"`
}

type Preferences struct {
	Cuisine []string `json:"cuisine,omitempty"`
	Mood    []string `json:"mood,omitempty"`
}

// PlanContext is the accumulated conversation state. Groups stay nil until
// something has been learned about them.
type PlanContext struct {
	Event        *EventInfo    `json:"event,omitempty"`
	Location     *LocationInfo `json:"location,omitempty"`
	Participants *Participants `json:"participants,omitempty"`
	Budget       *BudgetInfo   `json:"budget,omitempty"`
	Preferences  *Preferences  `json:"preferences,omitempty"`
}

// AwaitKind tags a pending clarification held beside the context rather than
// inside it, so transient parser state never leaks into the long-lived model.
type AwaitKind string

const (
	AwaitNone AwaitKind = ""
	AwaitAmPm AwaitKind = "ampm"
)

// Awaiting carries the raw pieces of an ambiguous answer until the user
// resolves it. Cleared on resolution or restart.
type Awaiting struct {
	Kind    AwaitKind `json:"kind,omitempty"`
	Hour    int       `json:"hour,omitempty"`
	Minutes int       `json:"minutes,omitempty"`
}

func (a Awaiting) Pending() bool { return a.Kind != AwaitNone }

// Update is a partial PlanContext. A non-nil group replaces the context's
// group wholesale, mirroring how answers overwrite what they re-answer.
// Awaiting, when non-nil, sets or clears the pending-clarification state.
type Update struct {
	Event        *EventInfo
	Location     *LocationInfo
	Participants *Participants
	Budget       *BudgetInfo
	Preferences  *Preferences
	Awaiting     *Awaiting
}

func (u Update) Empty() bool {
	return u.Event == nil && u.Location == nil && u.Participants == nil &&
		u.Budget == nil && u.Preferences == nil && u.Awaiting == nil
}

// Apply overlays an update onto the context and returns the awaiting state
// that should replace the current one (unchanged when the update carries none).
func (c *PlanContext) Apply(u Update, current Awaiting) Awaiting {
	if u.Event != nil {
		c.Event = u.Event
	}
	if u.Location != nil {
		c.Location = u.Location
	}
	if u.Participants != nil {
		c.Participants = u.Participants
	}
	if u.Budget != nil {
		c.Budget = u.Budget
	}
	if u.Preferences != nil {
		c.Preferences = u.Preferences
	}
	if u.Awaiting != nil {
		return *u.Awaiting
	}
	return current
}

// EventCopy returns a copy of the event group, or a fresh one, so callers can
// override single fields without mutating shared state.
func (c *PlanContext) EventCopy() *EventInfo {
	if c == nil || c.Event == nil {
		return &EventInfo{}
	}
	ev := *c.Event
	return &ev
}

func (c *PlanContext) ParticipantsCopy() *Participants {
	if c == nil || c.Participants == nil {
		return &Participants{}
	}
	p := *c.Participants
	return &p
}

func (c *PlanContext) PreferencesCopy() *Preferences {
	if c == nil || c.Preferences == nil {
		return &Preferences{}
	}
	p := *c.Preferences
	p.Cuisine = append([]string(nil), p.Cuisine...)
	p.Mood = append([]string(nil), p.Mood...)
	return &p
}

func (c *PlanContext) EventType() string {
	if c == nil || c.Event == nil {
		return ""
	}
	return c.Event.Type
}

func (c *PlanContext) StartTime() string {
	if c == nil || c.Event == nil {
		return ""
	}
	return c.Event.StartTime
}

// StartTimeResolved reports whether a usable 24h start time is present.
func (c *PlanContext) StartTimeResolved() bool {
	st := c.StartTime()
	return st != "" && st != NeedsClarification
}
