package storedcards

// Action is a request lifecycle event from the fetching layer.
type Action interface {
	isAction()
}

type FetchRequested struct{}

type FetchSucceeded struct {
	Items []StoredCard
}

type FetchFailed struct {
	Err error
}

type DeleteRequested struct {
	ID string
}

type DeleteSucceeded struct {
	ID string
}

type DeleteFailed struct {
	ID  string
	Err error
}

func (FetchRequested) isAction()  {}
func (FetchSucceeded) isAction()  {}
func (FetchFailed) isAction()     {}
func (DeleteRequested) isAction() {}
func (DeleteSucceeded) isAction() {}
func (DeleteFailed) isAction()    {}

// Reduce returns the state that follows s after a. The items slice of s is
// never written to.
func Reduce(s StoredCardsState, a Action) StoredCardsState {
	switch a := a.(type) {
	case FetchRequested:
		s.IsFetching = true
	case FetchSucceeded:
		s.Items = cloneItems(a.Items)
		s.HasLoadedFromServer = true
		s.IsFetching = false
	case FetchFailed:
		s.IsFetching = false
	case DeleteRequested:
		s.IsDeleting = true
	case DeleteSucceeded:
		items := make([]StoredCard, 0, len(s.Items))
		for _, card := range s.Items {
			if card.ID != a.ID {
				items = append(items, card)
			}
		}
		s.Items = items
		s.IsDeleting = false
	case DeleteFailed:
		s.IsDeleting = false
	}
	return s
}

func cloneItems(items []StoredCard) []StoredCard {
	if items == nil {
		return nil
	}
	out := make([]StoredCard, len(items))
	copy(out, items)
	return out
}
