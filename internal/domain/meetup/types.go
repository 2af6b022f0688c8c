package meetup

type Kind string

const (
	KindSale   Kind = "sale"
	KindPickup Kind = "pickup"
	KindReturn Kind = "return"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindSale, KindPickup, KindReturn:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type Party string

const (
	PartySeller Party = "seller"
	PartyBuyer  Party = "buyer"
)

type Status string

const (
	StatusCreated    Status = "created"
	StatusCodeActive Status = "code_active"
	StatusVerified   Status = "verified"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusExpired    Status = "expired"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusCodeActive, StatusVerified, StatusInProgress,
		StatusCompleted, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var transitions = map[Status][]Status{
	StatusCreated:    {StatusCodeActive},
	StatusCodeActive: {StatusCodeActive, StatusVerified, StatusInProgress, StatusCompleted, StatusExpired},
	StatusVerified:   {StatusCompleted, StatusFailed},
	StatusInProgress: {StatusCompleted},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
